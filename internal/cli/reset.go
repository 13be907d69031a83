package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/daithanwa/dsi202-2025/internal/db"
	"github.com/daithanwa/dsi202-2025/internal/services"
)

type ResetPasswordOptions struct {
	Database db.Options
	Username string
	// Prompt reads the new password from the terminal instead of generating one.
	Prompt bool
	Stdin  *os.File
	Out    io.Writer
}

func RunResetPasswordCommand(options ResetPasswordOptions) error {
	username := strings.TrimSpace(options.Username)
	if username == "" {
		return errors.New("username is required")
	}
	out := options.Out
	if out == nil {
		out = os.Stdout
	}

	database, err := db.Open(options.Database)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	auth := services.NewAuthService(db.NewUserRepository(database))

	if options.Prompt {
		password, err := promptNewPassword(options.Stdin, out)
		if err != nil {
			return err
		}
		if err := auth.AssignPassword(username, password); err != nil {
			return resetError(username, err)
		}
		fmt.Fprintln(out, "Password updated")
		fmt.Fprintln(out, "User must change password on next login.")
		return nil
	}

	temporaryPassword, err := auth.ResetPassword(username)
	if err != nil {
		return resetError(username, err)
	}
	fmt.Fprintln(out, "Password reset successful")
	fmt.Fprintf(out, "Temporary password: %s\n", temporaryPassword)
	fmt.Fprintln(out, "User must change password on next login.")
	return nil
}

func resetError(username string, err error) error {
	if errors.Is(err, services.ErrUserNotFound) {
		return fmt.Errorf("user %s not found", username)
	}
	return fmt.Errorf("reset password: %w", err)
}
