package repository

import (
	"time"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db}
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Update(id uint, updates map[string]any) error {
	return r.db.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error
}

func (r *UserRepository) SaveResetCode(id uint, code string, expiry time.Time) error {
	return r.db.Model(&entity.User{}).Where("id = ?", id).Updates(map[string]any{
		"reset_code":         code,
		"reset_token":        nil,
		"reset_token_expiry": expiry,
	}).Error
}

func (r *UserRepository) SaveResetToken(id uint, token string, expiry time.Time) error {
	return r.db.Model(&entity.User{}).Where("id = ?", id).Updates(map[string]any{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}).Error
}

// ResetPassword stores the new hash and clears all reset state in one update.
func (r *UserRepository) ResetPassword(id uint, hashed string) error {
	return r.db.Model(&entity.User{}).Where("id = ?", id).Updates(map[string]any{
		"password":           hashed,
		"reset_code":         nil,
		"reset_token":        nil,
		"reset_token_expiry": nil,
	}).Error
}
