package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/daithanwa/dsi202-2025/internal/db"
	"github.com/daithanwa/dsi202-2025/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func TestRunResetPasswordCommand(t *testing.T) {
	options := db.Options{Driver: db.DriverSQLite, Path: filepath.Join(t.TempDir(), "fitplan.db")}
	database, err := db.Open(options)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	users := db.NewUserRepository(database)
	hash, err := bcrypt.GenerateFromPassword([]byte("trainhard42"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Username: "runner", Email: "runner@example.com", PasswordHash: string(hash)}
	if err := users.CreateWithProfile(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	var out bytes.Buffer
	if err := RunResetPasswordCommand(ResetPasswordOptions{Database: options, Username: "Runner", Out: &out}); err != nil {
		t.Fatalf("RunResetPasswordCommand() unexpected error: %v", err)
	}

	line := ""
	for _, candidate := range strings.Split(out.String(), "\n") {
		if strings.HasPrefix(candidate, "Temporary password: ") {
			line = strings.TrimPrefix(candidate, "Temporary password: ")
		}
	}
	if len(line) != 12 {
		t.Fatalf("temporary password %q, want 12 characters", line)
	}

	updated, err := users.FindByID(user.ID)
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if !updated.MustChangePassword {
		t.Fatalf("expected must_change_password after reset")
	}
	if bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(line)) != nil {
		t.Fatalf("stored hash does not match the printed temporary password")
	}
}

func TestRunResetPasswordCommandUnknownUser(t *testing.T) {
	options := db.Options{Driver: db.DriverSQLite, Path: filepath.Join(t.TempDir(), "fitplan.db")}
	err := RunResetPasswordCommand(ResetPasswordOptions{Database: options, Username: "ghost", Out: &bytes.Buffer{}})
	if err == nil || !strings.Contains(err.Error(), "user ghost not found") {
		t.Fatalf("RunResetPasswordCommand() error = %v, want user not found", err)
	}
	if err := RunResetPasswordCommand(ResetPasswordOptions{Database: options}); err == nil {
		t.Fatalf("expected error for empty username")
	}
}

func TestReadTrimmedLine(t *testing.T) {
	line, err := readTrimmedLine(strings.NewReader("s3cret pass\r\nignored"))
	if err != nil {
		t.Fatalf("readTrimmedLine() unexpected error: %v", err)
	}
	if line != "s3cret pass" {
		t.Fatalf("readTrimmedLine() = %q, want %q", line, "s3cret pass")
	}
}
