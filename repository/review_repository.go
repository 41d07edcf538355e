package repository

import (
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/entity"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db}
}

func (r *ReviewRepository) Create(review *entity.Review) error {
	return r.db.Create(review).Error
}

func (r *ReviewRepository) FindByID(id uint) (*entity.Review, error) {
	var review entity.Review
	if err := r.db.First(&review, id).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) FindByRestaurant(restaurantID uint) ([]entity.Review, error) {
	var reviews []entity.Review
	err := r.db.
		Where("restaurant_id = ?", restaurantID).
		Order("created_at DESC").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) Update(review *entity.Review) error {
	return r.db.Save(review).Error
}

func (r *ReviewRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Review{}, id).Error
}

func (r *ReviewRepository) DeleteByRestaurant(restaurantID uint) error {
	return r.db.Where("restaurant_id = ?", restaurantID).Delete(&entity.Review{}).Error
}

// Aggregate returns the mean rating and count over the current review set.
func (r *ReviewRepository) Aggregate(restaurantID uint) (float64, int64, error) {
	var agg struct {
		Avg   float64
		Count int64
	}
	err := r.db.Model(&entity.Review{}).
		Where("restaurant_id = ?", restaurantID).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&agg).Error
	return agg.Avg, agg.Count, err
}
