package application

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yemenhybrid/workshop-go/internal/apperr"
	"github.com/yemenhybrid/workshop-go/internal/api/middleware"
	"github.com/yemenhybrid/workshop-go/internal/domain/user"
	"github.com/yemenhybrid/workshop-go/internal/logger"
	"github.com/yemenhybrid/workshop-go/internal/repository"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	tokenDuration      = 7 * 24 * time.Hour
	resetTokenDuration = time.Hour
)

type UserService struct {
	Repos *repository.Repos
}

func NewUserService(repos *repository.Repos) *UserService {
	return &UserService{Repos: repos}
}

// Register creates a self-service customer account.
func (s *UserService) Register(input user.RegisterInput) (user.User, error) {
	if _, err := s.Repos.User.GetUserByUsername(input.Username); err == nil {
		return user.User{}, fmt.Errorf("%w: username already exists", apperr.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}
	if _, err := s.Repos.User.GetUserByEmail(input.Email); err == nil {
		return user.User{}, fmt.Errorf("%w: email already exists", apperr.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, err
	}

	u := user.User{
		FullName:          input.FullName,
		Email:             input.Email,
		Username:          input.Username,
		HashedPassword:    string(hashed),
		Role:              user.RoleCustomer,
		PreferredLanguage: user.LanguageEnglish,
		IsActive:          true,
	}
	if err := s.Repos.User.CreateUser(&u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

// Login accepts username or email as the identifier.
func (s *UserService) Login(input user.LoginInput) (user.User, string, error) {
	u, err := s.Repos.User.GetUserByUsername(input.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		u, err = s.Repos.User.GetUserByEmail(input.Username)
	}
	if err != nil {
		return user.User{}, "", fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthenticated)
	}
	if !u.IsActive {
		return user.User{}, "", fmt.Errorf("%w: account is inactive", apperr.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.HashedPassword), []byte(input.Password)); err != nil {
		return user.User{}, "", fmt.Errorf("%w: invalid credentials", apperr.ErrUnauthenticated)
	}

	token, err := middleware.GenerateToken(u, tokenDuration)
	if err != nil {
		return user.User{}, "", err
	}
	return u, token, nil
}

func (s *UserService) ListUsers() ([]user.User, error) {
	return s.Repos.User.ListUsers()
}

func (s *UserService) FindUserByID(id string) (user.User, error) {
	u, err := s.Repos.User.GetUserByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, fmt.Errorf("%w: user %s", apperr.ErrNotFound, id)
		}
		return user.User{}, err
	}
	return u, nil
}

// CreateUser is the admin path: any role, engineer specialization
// allowed.
func (s *UserService) CreateUser(input user.CreateUserInput) (user.User, error) {
	if _, err := s.Repos.User.GetUserByUsername(input.Username); err == nil {
		return user.User{}, fmt.Errorf("%w: username already exists", apperr.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}
	if _, err := s.Repos.User.GetUserByEmail(input.Email); err == nil {
		return user.User{}, fmt.Errorf("%w: email already exists", apperr.ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return user.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, err
	}

	u := user.User{
		FullName:          input.FullName,
		Email:             input.Email,
		Username:          input.Username,
		HashedPassword:    string(hashed),
		Role:              user.RoleCustomer,
		Specialization:    input.Specialization,
		PreferredLanguage: user.LanguageEnglish,
		IsActive:          true,
	}
	if input.Role != nil {
		u.Role = *input.Role
	}
	if err := s.Repos.User.CreateUser(&u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (s *UserService) UpdateUser(id string, input user.UpdateUserInput) (user.User, error) {
	u, err := s.FindUserByID(id)
	if err != nil {
		return user.User{}, err
	}

	fields := map[string]interface{}{}
	if input.FullName != nil {
		fields["full_name"] = *input.FullName
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Role != nil {
		fields["role"] = *input.Role
	}
	if input.Specialization != nil {
		fields["specialization"] = *input.Specialization
	}
	if input.PreferredLanguage != nil {
		fields["preferred_language"] = *input.PreferredLanguage
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}
	if len(fields) == 0 {
		return u, nil
	}

	if err := s.Repos.User.UpdateUserFields(id, fields); err != nil {
		return user.User{}, err
	}
	return s.FindUserByID(id)
}

func (s *UserService) UpdateProfile(id string, input user.UpdateProfileInput) (user.User, error) {
	return s.UpdateUser(id, user.UpdateUserInput{
		FullName:          input.FullName,
		Email:             input.Email,
		PreferredLanguage: input.PreferredLanguage,
	})
}

func (s *UserService) DeactivateUser(id string) error {
	if _, err := s.FindUserByID(id); err != nil {
		return err
	}
	return s.Repos.User.DeactivateUser(id)
}

// ForgotPassword issues a reset token of the form selector.verifier:
// the selector is stored plain for O(1) lookup, the verifier only as a
// bcrypt hash. The returned token is empty when the email is unknown so
// handlers can keep their response uniform.
func (s *UserService) ForgotPassword(input user.ForgotPasswordInput) (string, error) {
	u, err := s.Repos.User.GetUserByEmail(input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}

	selector, err := randomHex(8)
	if err != nil {
		return "", err
	}
	verifier, err := randomHex(32)
	if err != nil {
		return "", err
	}
	hashedVerifier, err := bcrypt.GenerateFromPassword([]byte(verifier), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	resetToken := user.PasswordResetToken{
		UserID:         u.ID,
		Selector:       selector,
		HashedVerifier: string(hashedVerifier),
		ExpiresAt:      time.Now().Add(resetTokenDuration),
	}
	if err := s.Repos.User.CreateResetToken(&resetToken); err != nil {
		return "", err
	}

	// The token value is surfaced here for out-of-band delivery; there
	// is no mail transport.
	token := selector + "." + verifier
	logger.L.Info("password reset token issued",
		zap.String("user_id", u.ID),
		zap.String("token", token))
	return token, nil
}

func (s *UserService) ResetPassword(input user.ResetPasswordInput) error {
	selector, verifier, ok := strings.Cut(input.Token, ".")
	if !ok {
		return fmt.Errorf("%w: invalid or expired token", apperr.ErrValidation)
	}

	token, err := s.Repos.User.GetResetTokenBySelector(selector)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: invalid or expired token", apperr.ErrValidation)
		}
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(token.HashedVerifier), []byte(verifier)); err != nil {
		return fmt.Errorf("%w: invalid or expired token", apperr.ErrValidation)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.User.UpdateUserFields(token.UserID, map[string]interface{}{
			"hashed_password": string(hashed),
		}); err != nil {
			return err
		}
		return tx.User.DeleteResetToken(token.ID)
	})
}

func randomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
