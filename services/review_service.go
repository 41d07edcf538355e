package services

import (
	"errors"
	"math"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/entity"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/errs"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/repository"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/utils"
	"gorm.io/gorm"
)

// ReviewService owns the review lifecycle and keeps the restaurant aggregate
// rating consistent with the current review set.
type ReviewService struct {
	reviews     *repository.ReviewRepository
	restaurants *repository.RestaurantRepository
}

func NewReviewService(reviews *repository.ReviewRepository, restaurants *repository.RestaurantRepository) *ReviewService {
	return &ReviewService{reviews: reviews, restaurants: restaurants}
}

type ReviewInput struct {
	Rating  int
	Comment string
	Image   string
}

func validateReviewInput(in ReviewInput) error {
	if err := utils.ValidateRating(in.Rating); err != nil {
		return err
	}
	if err := utils.ValidateComment(in.Comment); err != nil {
		return err
	}
	return utils.ValidateImage(in.Image)
}

func (s *ReviewService) Create(restaurantID, userID uint, userName string, in ReviewInput) (*entity.Review, error) {
	if _, err := s.restaurants.FindByID(restaurantID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("restaurant not found")
		}
		return nil, err
	}
	if err := validateReviewInput(in); err != nil {
		return nil, err
	}

	review := &entity.Review{
		Rating:       in.Rating,
		Comment:      in.Comment,
		Image:        in.Image,
		UserID:       userID,
		UserName:     userName,
		RestaurantID: restaurantID,
	}
	if err := s.reviews.Create(review); err != nil {
		return nil, err
	}

	if err := s.Recompute(restaurantID); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Update(reviewID, userID uint, in ReviewInput) (*entity.Review, error) {
	review, err := s.reviews.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("review not found")
		}
		return nil, err
	}
	if review.UserID != userID {
		return nil, errs.Forbidden("only the author may update this review")
	}
	if err := validateReviewInput(in); err != nil {
		return nil, err
	}

	review.Rating = in.Rating
	review.Comment = in.Comment
	review.Image = in.Image
	if err := s.reviews.Update(review); err != nil {
		return nil, err
	}

	if err := s.Recompute(review.RestaurantID); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) Delete(reviewID, userID uint) error {
	review, err := s.reviews.FindByID(reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("review not found")
		}
		return err
	}
	if review.UserID != userID {
		return errs.Forbidden("only the author may delete this review")
	}

	if err := s.reviews.Delete(reviewID); err != nil {
		return err
	}
	return s.Recompute(review.RestaurantID)
}

func (s *ReviewService) ListForRestaurant(restaurantID uint) ([]entity.Review, error) {
	return s.reviews.FindByRestaurant(restaurantID)
}

// Recompute derives rating and totalRatings from the full current review set.
// Always a full recompute, so it self-corrects any prior drift; an empty set
// resets both to zero.
func (s *ReviewService) Recompute(restaurantID uint) error {
	avg, count, err := s.reviews.Aggregate(restaurantID)
	if err != nil {
		return err
	}
	if count == 0 {
		return s.restaurants.UpdateAggregate(restaurantID, 0, 0)
	}
	return s.restaurants.UpdateAggregate(restaurantID, round2(avg), int(count))
}

// round2 rounds half-up to two decimals; ratings are positive so math.Round
// is half-up here.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
