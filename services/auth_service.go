package services

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/entity"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/errs"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/repository"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/utils"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService handles registration, login, profile and the password-reset
// code flow.
type AuthService struct {
	users     *repository.UserRepository
	mailer    Mailer
	jwtSecret string
	jwtTTL    time.Duration
	resetTTL  time.Duration
}

func NewAuthService(users *repository.UserRepository, mailer Mailer, secret string, jwtTTL, resetTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		mailer:    mailer,
		jwtSecret: secret,
		jwtTTL:    jwtTTL,
		resetTTL:  resetTTL,
	}
}

func (s *AuthService) Register(email, password, name string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := utils.ValidateEmail(email); err != nil {
		return "", nil, err
	}
	if err := utils.ValidatePassword(password); err != nil {
		return "", nil, err
	}
	if err := utils.ValidateName(name); err != nil {
		return "", nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(name),
	}
	// The unique index on email is the source of truth, so two racing
	// registrations cannot both win.
	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", nil, errs.Validation("email already registered")
		}
		return "", nil, err
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Name, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(email)
	if err != nil {
		return "", nil, errs.Unauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errs.Unauthorized("invalid credentials")
	}

	token, err := utils.GenerateToken(user.ID, user.Email, user.Name, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("user not found")
		}
		return nil, err
	}
	return user, nil
}

type ProfileInput struct {
	Name      string
	FoodTypes []string
	Location  string
}

func (s *AuthService) UpdateProfile(userID uint, in ProfileInput) (*entity.User, error) {
	updates := map[string]any{}
	if in.Name != "" {
		if err := utils.ValidateName(in.Name); err != nil {
			return nil, err
		}
		updates["name"] = strings.TrimSpace(in.Name)
	}
	if in.FoodTypes != nil {
		if err := utils.ValidateFoodTypes(in.FoodTypes); err != nil {
			return nil, err
		}
		// Updates with a map bypasses the json serializer, marshal by hand
		raw, err := json.Marshal(in.FoodTypes)
		if err != nil {
			return nil, err
		}
		updates["food_types"] = string(raw)
	}
	if in.Location != "" {
		if err := utils.ValidateLocation(in.Location); err != nil {
			return nil, err
		}
		updates["location"] = in.Location
	}
	if len(updates) > 0 {
		if err := s.users.Update(userID, updates); err != nil {
			return nil, err
		}
	}
	return s.GetProfile(userID)
}

// CompleteSetup stores the onboarding preferences and marks the profile
// complete.
func (s *AuthService) CompleteSetup(userID uint, foodTypes []string, location string) (*entity.User, error) {
	if err := utils.ValidateFoodTypes(foodTypes); err != nil {
		return nil, err
	}
	if err := utils.ValidateLocation(location); err != nil {
		return nil, err
	}
	if _, err := s.GetProfile(userID); err != nil {
		return nil, err
	}

	raw, err := json.Marshal(foodTypes)
	if err != nil {
		return nil, err
	}
	err = s.users.Update(userID, map[string]any{
		"food_types":          string(raw),
		"location":            location,
		"is_profile_complete": true,
	})
	if err != nil {
		return nil, err
	}
	return s.GetProfile(userID)
}

// RequestPasswordReset issues a short-lived numeric code. The outcome is
// identical whether or not the account exists, to avoid account enumeration.
func (s *AuthService) RequestPasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	code, err := generateResetCode()
	if err != nil {
		return err
	}
	expiry := time.Now().Add(s.resetTTL)
	if err := s.users.SaveResetCode(user.ID, code, expiry); err != nil {
		return err
	}
	return s.mailer.SendResetCode(user.Email, code)
}

// VerifyResetCode exchanges a valid code for a single-use reset token.
func (s *AuthService) VerifyResetCode(email, code string) (string, error) {
	user, err := s.findResetCandidate(email)
	if err != nil {
		return "", err
	}
	if user.ResetCode == nil || *user.ResetCode != code {
		return "", errs.Validation("invalid or expired reset code")
	}
	if user.ResetTokenExpiry == nil || time.Now().After(*user.ResetTokenExpiry) {
		return "", errs.Validation("invalid or expired reset code")
	}

	token := uuid.NewString()
	if err := s.users.SaveResetToken(user.ID, token, time.Now().Add(s.resetTTL)); err != nil {
		return "", err
	}
	return token, nil
}

// ResetPassword consumes the reset token, stores the new password and clears
// all reset state.
func (s *AuthService) ResetPassword(email, token, newPassword string) error {
	if err := utils.ValidatePassword(newPassword); err != nil {
		return err
	}

	user, err := s.findResetCandidate(email)
	if err != nil {
		return err
	}
	if user.ResetToken == nil || *user.ResetToken != token {
		return errs.Validation("invalid or expired reset token")
	}
	if user.ResetTokenExpiry == nil || time.Now().After(*user.ResetTokenExpiry) {
		return errs.Validation("invalid or expired reset token")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.ResetPassword(user.ID, string(hashed))
}

func (s *AuthService) findResetCandidate(email string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.Validation("invalid or expired reset code")
		}
		return nil, err
	}
	return user, nil
}

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
