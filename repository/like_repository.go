package repository

import (
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/entity"
	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db}
}

func (r *LikeRepository) Create(like *entity.Like) error {
	return r.db.Create(like).Error
}

func (r *LikeRepository) Find(restaurantID, userID uint) (*entity.Like, error) {
	var like entity.Like
	err := r.db.
		Where("restaurant_id = ? AND user_id = ?", restaurantID, userID).
		First(&like).Error
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (r *LikeRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Like{}, id).Error
}

func (r *LikeRepository) DeleteByRestaurant(restaurantID uint) error {
	return r.db.Where("restaurant_id = ?", restaurantID).Delete(&entity.Like{}).Error
}

func (r *LikeRepository) CountByRestaurant(restaurantID uint) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Like{}).
		Where("restaurant_id = ?", restaurantID).
		Count(&count).Error
	return count, err
}
