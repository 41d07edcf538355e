package services

import (
	"errors"
	"strings"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/entity"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/errs"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/repository"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/utils"
	"gorm.io/gorm"
)

type RestaurantService struct {
	restaurants *repository.RestaurantRepository
	reviews     *repository.ReviewRepository
	likes       *repository.LikeRepository
}

func NewRestaurantService(
	restaurants *repository.RestaurantRepository,
	reviews *repository.ReviewRepository,
	likes *repository.LikeRepository,
) *RestaurantService {
	return &RestaurantService{restaurants: restaurants, reviews: reviews, likes: likes}
}

type RestaurantInput struct {
	Name        string
	Description string
	Address     string
	Cuisine     string
	Image       string
	Sector      string
	Lat         float64
	Lng         float64
}

func (s *RestaurantService) List(cuisines []string, sector string) ([]entity.Restaurant, error) {
	return s.restaurants.FindAll(cuisines, sector)
}

func (s *RestaurantService) Get(id uint) (*entity.Restaurant, error) {
	rest, err := s.restaurants.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFound("restaurant not found")
		}
		return nil, err
	}
	return rest, nil
}

func (s *RestaurantService) Create(in RestaurantInput) (*entity.Restaurant, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, errs.Validation("name is required")
	}
	if err := utils.ValidateImage(in.Image); err != nil {
		return nil, err
	}

	rest := &entity.Restaurant{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Address:     in.Address,
		Cuisine:     in.Cuisine,
		Image:       in.Image,
		Sector:      in.Sector,
		Lat:         in.Lat,
		Lng:         in.Lng,
	}
	if err := s.restaurants.Create(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// RestaurantUpdateInput carries only the fields present in the request;
// nil means "leave unchanged".
type RestaurantUpdateInput struct {
	Name        *string
	Description *string
	Address     *string
	Cuisine     *string
	Image       *string
	Sector      *string
	Lat         *float64
	Lng         *float64
}

func (s *RestaurantService) Update(id uint, in RestaurantUpdateInput) (*entity.Restaurant, error) {
	rest, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, errs.Validation("name is required")
		}
		rest.Name = strings.TrimSpace(*in.Name)
	}
	if in.Image != nil {
		if err := utils.ValidateImage(*in.Image); err != nil {
			return nil, err
		}
		rest.Image = *in.Image
	}
	if in.Description != nil {
		rest.Description = *in.Description
	}
	if in.Address != nil {
		rest.Address = *in.Address
	}
	if in.Cuisine != nil {
		rest.Cuisine = *in.Cuisine
	}
	if in.Sector != nil {
		rest.Sector = *in.Sector
	}
	if in.Lat != nil {
		rest.Lat = *in.Lat
	}
	if in.Lng != nil {
		rest.Lng = *in.Lng
	}

	if err := s.restaurants.Update(rest); err != nil {
		return nil, err
	}
	return rest, nil
}

// Delete cascades: reviews first, then likes, then the restaurant itself.
func (s *RestaurantService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.reviews.DeleteByRestaurant(id); err != nil {
		return err
	}
	if err := s.likes.DeleteByRestaurant(id); err != nil {
		return err
	}
	return s.restaurants.Delete(id)
}
