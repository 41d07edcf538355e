package repository

import (
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/entity"
	"gorm.io/gorm"
)

type RestaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{db}
}

func (r *RestaurantRepository) Create(rest *entity.Restaurant) error {
	return r.db.Create(rest).Error
}

// FindAll filters by cuisine tags and sector when given.
func (r *RestaurantRepository) FindAll(cuisines []string, sector string) ([]entity.Restaurant, error) {
	var rests []entity.Restaurant
	q := r.db
	if len(cuisines) > 0 {
		q = q.Where("cuisine IN ?", cuisines)
	}
	if sector != "" {
		q = q.Where("sector = ?", sector)
	}
	err := q.Find(&rests).Error
	return rests, err
}

func (r *RestaurantRepository) FindByID(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.db.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *RestaurantRepository) Update(rest *entity.Restaurant) error {
	return r.db.Save(rest).Error
}

func (r *RestaurantRepository) Delete(id uint) error {
	return r.db.Delete(&entity.Restaurant{}, id).Error
}

// UpdateAggregate writes the derived rating columns only.
func (r *RestaurantRepository) UpdateAggregate(id uint, rating float64, total int) error {
	return r.db.Model(&entity.Restaurant{}).Where("id = ?", id).Updates(map[string]any{
		"rating":        rating,
		"total_ratings": total,
	}).Error
}
