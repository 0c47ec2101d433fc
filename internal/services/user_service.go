package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode"

	"gorm.io/gorm"

	"botic/internal/models/db_models"
	"botic/internal/models/request_models"
	"botic/internal/models/response_models"
	"botic/internal/repositories"
	mem "botic/pkg/memcache"
	"botic/pkg/utils"
)

const resetTokenTTL = 15 * time.Minute

type UserServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.UserResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (string, error)
	GetByID(ctx context.Context, id uint) (*response_models.UserResponse, error)
	Delete(ctx context.Context, id uint) error
	RequestPasswordReset(ctx context.Context, email string) error
	ConfirmPasswordReset(ctx context.Context, request request_models.ConfirmPasswordReset) error
}

type UserService struct {
	userRepo    repositories.IUserRepository
	appRepo     repositories.IAppRepository
	mailService IMailService
	resetTokens mem.ResetTokenStore
}

func NewUserService(
	userRepo repositories.IUserRepository,
	appRepo repositories.IAppRepository,
	mailService IMailService,
	resetTokens mem.ResetTokenStore,
) UserServiceInterface {
	return &UserService{
		userRepo:    userRepo,
		appRepo:     appRepo,
		mailService: mailService,
		resetTokens: resetTokens,
	}
}

func (u *UserService) SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.UserResponse, error) {
	existing, err := u.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	username, err := u.generateUniqueUsername(ctx, request.Name, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	passwordHash, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         request.Name,
		Email:        request.Email,
		Username:     username,
		PasswordHash: passwordHash,
	}

	if err := u.userRepo.Insert(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Verification mail is intentionally not sent at signup; no address
	// is registered with the mailer in this flow.

	return &response_models.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

func (u *UserService) Login(ctx context.Context, request request_models.LoginRequest) (string, error) {
	user, err := u.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return "", utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	return token, nil
}

func (u *UserService) GetByID(ctx context.Context, id uint) (*response_models.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	return &response_models.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}, nil
}

// Delete refuses to remove a user that still owns apps. The foreign key
// on apps backs this up at the database level.
func (u *UserService) Delete(ctx context.Context, id uint) error {
	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}

	apps, err := u.appRepo.CountByUser(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if apps > 0 {
		return utils.ErrUserOwnsApps
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return utils.ErrUserOwnsApps
		}
		return utils.ErrDatabaseError
	}
	return nil
}

// RequestPasswordReset never discloses whether the email is registered.
func (u *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return nil
	}

	token, err := utils.GenerateSecureToken(32)
	if err != nil {
		return utils.ErrDatabaseError
	}

	u.resetTokens.Set(token, user.Email, resetTokenTTL)

	if err := u.mailService.SendMailToResetPassword(user.Email, token); err != nil {
		log.Printf("password reset mail to %s failed: %v", user.Email, err)
	}
	return nil
}

func (u *UserService) ConfirmPasswordReset(ctx context.Context, request request_models.ConfirmPasswordReset) error {
	email := u.resetTokens.Consume(request.Token)
	if email == "" {
		return utils.ErrInvalidResetToken
	}

	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrInvalidResetToken
	}

	passwordHash, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return utils.ErrDatabaseError
	}

	if err := u.userRepo.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// generateUniqueUsername derives a username from the display name, falls
// back to the email local part, then "user", and suffixes a counter
// until the candidate is free.
func (u *UserService) generateUniqueUsername(ctx context.Context, name, email string) (string, error) {
	base := usernameSlug(name)
	if base == "" {
		base = usernameSlug(strings.SplitN(email, "@", 2)[0])
	}
	if base == "" {
		base = "user"
	}

	candidate := base
	for i := 2; ; i++ {
		taken, err := u.userRepo.UsernameTaken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
}

func usernameSlug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
