package controllers

import (
	"strconv"
	"strings"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/resp"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/services"
	"github.com/gin-gonic/gin"
)

type RestaurantController struct {
	service *services.RestaurantService
}

func NewRestaurantController(s *services.RestaurantService) *RestaurantController {
	return &RestaurantController{service: s}
}

type restaurantReq struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Cuisine     string  `json:"cuisine"`
	Image       string  `json:"image"`
	Sector      string  `json:"sector"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
}

func (r restaurantReq) toInput() services.RestaurantInput {
	return services.RestaurantInput{
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		Cuisine:     r.Cuisine,
		Image:       r.Image,
		Sector:      r.Sector,
		Lat:         r.Lat,
		Lng:         r.Lng,
	}
}

// GET /restaurants?cuisines=a,b&location=Sector
func (ctl *RestaurantController) List(c *gin.Context) {
	var cuisines []string
	if raw := c.Query("cuisines"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				cuisines = append(cuisines, part)
			}
		}
	}

	rests, err := ctl.service.List(cuisines, c.Query("location"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": rests})
}

// GET /restaurants/:id
func (ctl *RestaurantController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	rest, err := ctl.service.Get(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// POST /restaurants (Protected)
func (ctl *RestaurantController) Create(c *gin.Context) {
	var req restaurantReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "name is required")
		return
	}

	rest, err := ctl.service.Create(req.toInput())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rest)
}

type restaurantUpdateReq struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	Cuisine     *string  `json:"cuisine"`
	Image       *string  `json:"image"`
	Sector      *string  `json:"sector"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
}

// PUT /restaurants/:id (Protected) — absent fields stay as they are
func (ctl *RestaurantController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	var req restaurantUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "invalid request body")
		return
	}

	rest, err := ctl.service.Update(uint(id), services.RestaurantUpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Cuisine:     req.Cuisine,
		Image:       req.Image,
		Sector:      req.Sector,
		Lat:         req.Lat,
		Lng:         req.Lng,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// DELETE /restaurants/:id (Protected) — cascades reviews and likes
func (ctl *RestaurantController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	if err := ctl.service.Delete(uint(id)); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "restaurant deleted"})
}
