package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/daithanwa/dsi202-2025/internal/models"
	"github.com/daithanwa/dsi202-2025/internal/security"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken          = errors.New("username already taken")
	ErrUserNotFound           = errors.New("user not found")
	ErrCurrentPasswordInvalid = errors.New("current password is incorrect")
)

const temporaryPasswordLength = 12

type RegisterInput struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type AccountInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, error)
	FindByUsername(username string) (models.User, bool, error)
	ExistsByUsername(username string) (bool, error)
	CreateWithProfile(user *models.User) error
	UpdatePassword(userID uint, passwordHash string, mustChangePassword bool) error
	UpdateNames(userID uint, firstName string, lastName string, email string) error
}

type AuthService struct {
	users      AuthUserRepository
	bcryptCost int
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users, bcryptCost: bcrypt.DefaultCost}
}

// Register creates the account with an empty profile.
func (service *AuthService) Register(input RegisterInput) (models.User, error) {
	username := NormalizeUsername(input.Username)
	if username == "" {
		return models.User{}, ErrInvalidUsername
	}
	email := NormalizeAuthEmail(input.Email)
	if email == "" {
		return models.User{}, ErrInvalidEmail
	}
	if input.Password != input.ConfirmPassword {
		return models.User{}, ErrPasswordMismatch
	}
	if err := ValidatePasswordStrength(input.Password, username); err != nil {
		return models.User{}, err
	}

	exists, err := service.users.ExistsByUsername(username)
	if err != nil {
		return models.User{}, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return models.User{}, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), service.bcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hash password: %w", err)
	}
	user := models.User{Username: username, Email: email, PasswordHash: string(hash)}
	if err := service.users.CreateWithProfile(&user); err != nil {
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Authenticate returns ErrAuthCredentialsInvalid for unknown users and wrong
// passwords alike.
func (service *AuthService) Authenticate(usernameRaw string, passwordRaw string) (models.User, error) {
	username, password, err := NormalizeCredentialsInput(usernameRaw, passwordRaw)
	if err != nil {
		return models.User{}, err
	}

	user, found, err := service.users.FindByUsername(username)
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if !found {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrAuthCredentialsInvalid
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	return service.users.FindByID(userID)
}

func (service *AuthService) UpdateAccount(userID uint, input AccountInput) (models.User, error) {
	email := NormalizeAuthEmail(input.Email)
	if email == "" {
		return models.User{}, ErrInvalidEmail
	}
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if err := service.users.UpdateNames(userID, firstName, lastName, email); err != nil {
		return models.User{}, fmt.Errorf("update account: %w", err)
	}
	return service.users.FindByID(userID)
}

// ChangePassword clears the must-change flag set by a password reset.
func (service *AuthService) ChangePassword(userID uint, input ChangePasswordInput) error {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return ErrCurrentPasswordInvalid
	}
	if input.NewPassword != input.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if err := ValidatePasswordStrength(input.NewPassword, user.Username); err != nil {
		return err
	}
	return service.setPassword(user.ID, input.NewPassword, false)
}

// ResetPassword assigns a random temporary password that must be changed on
// next login.
func (service *AuthService) ResetPassword(usernameRaw string) (string, error) {
	user, err := service.userForReset(usernameRaw)
	if err != nil {
		return "", err
	}

	temporaryPassword, err := security.TemporaryPassword(temporaryPasswordLength)
	if err != nil {
		return "", fmt.Errorf("generate temporary password: %w", err)
	}
	if err := service.setPassword(user.ID, temporaryPassword, true); err != nil {
		return "", err
	}
	return temporaryPassword, nil
}

// AssignPassword sets an operator-chosen password; the user must still change
// it on next login.
func (service *AuthService) AssignPassword(usernameRaw string, password string) error {
	user, err := service.userForReset(usernameRaw)
	if err != nil {
		return err
	}
	if err := ValidatePasswordStrength(password, user.Username); err != nil {
		return err
	}
	return service.setPassword(user.ID, password, true)
}

func (service *AuthService) userForReset(usernameRaw string) (models.User, error) {
	username := NormalizeUsername(usernameRaw)
	if username == "" {
		return models.User{}, ErrInvalidUsername
	}
	user, found, err := service.users.FindByUsername(username)
	if err != nil {
		return models.User{}, fmt.Errorf("load user: %w", err)
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (service *AuthService) setPassword(userID uint, password string, mustChange bool) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), service.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := service.users.UpdatePassword(userID, string(hash), mustChange); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
