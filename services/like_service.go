package services

import (
	"errors"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/entity"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/errs"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/repository"
	"gorm.io/gorm"
)

// LikeService toggles a user's like on a restaurant.
type LikeService struct {
	likes       *repository.LikeRepository
	restaurants *repository.RestaurantRepository
}

func NewLikeService(likes *repository.LikeRepository, restaurants *repository.RestaurantRepository) *LikeService {
	return &LikeService{likes: likes, restaurants: restaurants}
}

// Toggle deletes the like when one exists, otherwise inserts one. The insert
// is guarded by the composite unique index: if a concurrent request won the
// insert race, the duplicate-key error is recovered as liked=true rather
// than surfaced to the client.
func (s *LikeService) Toggle(restaurantID, userID uint) (bool, error) {
	if _, err := s.restaurants.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, errs.NotFound("restaurant not found")
		}
		return false, err
	}

	existing, err := s.likes.Find(restaurantID, userID)
	if err == nil {
		if err := s.likes.Delete(existing.ID); err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	like := &entity.Like{RestaurantID: restaurantID, UserID: userID}
	if err := s.likes.Create(like); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// lost the race to another like; already in the desired state
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// Status reports whether the user has liked the restaurant and the total
// like count.
func (s *LikeService) Status(restaurantID, userID uint) (bool, int64, error) {
	if _, err := s.restaurants.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, errs.NotFound("restaurant not found")
		}
		return false, 0, err
	}

	liked := true
	if _, err := s.likes.Find(restaurantID, userID); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, 0, err
		}
		liked = false
	}

	count, err := s.likes.CountByRestaurant(restaurantID)
	if err != nil {
		return false, 0, err
	}
	return liked, count, nil
}
