package controllers

import (
	"strconv"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/resp"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/services"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/utils"
	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController(s *services.ReviewService) *ReviewController {
	return &ReviewController{service: s}
}

type createReviewReq struct {
	RestaurantID uint   `json:"restaurantId" binding:"required"`
	Rating       int    `json:"rating" binding:"required"`
	Comment      string `json:"comment"`
	Image        string `json:"image"`
}

// POST /reviews (Protected)
func (ctl *ReviewController) Create(c *gin.Context) {
	uid, ok := utils.UserIDFromCtx(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req createReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "restaurantId and rating are required")
		return
	}

	review, err := ctl.service.Create(req.RestaurantID, uid, utils.UserNameFromCtx(c), services.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
		Image:   req.Image,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, review)
}

type updateReviewReq struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
	Image   string `json:"image"`
}

// PUT /reviews/:reviewId (Protected, author only)
func (ctl *ReviewController) Update(c *gin.Context) {
	uid, ok := utils.UserIDFromCtx(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, err := strconv.Atoi(c.Param("reviewId"))
	if err != nil {
		resp.BadRequest(c, "invalid review id")
		return
	}

	var req updateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "rating is required")
		return
	}

	review, err := ctl.service.Update(uint(id), uid, services.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
		Image:   req.Image,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, review)
}

// DELETE /reviews/:reviewId (Protected, author only)
func (ctl *ReviewController) Delete(c *gin.Context) {
	uid, ok := utils.UserIDFromCtx(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, err := strconv.Atoi(c.Param("reviewId"))
	if err != nil {
		resp.BadRequest(c, "invalid review id")
		return
	}

	if err := ctl.service.Delete(uint(id), uid); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "review deleted"})
}

// GET /reviews/:restaurantId (Public)
func (ctl *ReviewController) ListForRestaurant(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("restaurantId"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	reviews, err := ctl.service.ListForRestaurant(uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": reviews})
}
