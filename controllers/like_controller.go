package controllers

import (
	"strconv"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/resp"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/services"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/utils"
	"github.com/gin-gonic/gin"
)

type LikeController struct {
	service *services.LikeService
}

func NewLikeController(s *services.LikeService) *LikeController {
	return &LikeController{service: s}
}

type likeReq struct {
	RestaurantID uint `json:"restaurantId" binding:"required"`
}

// POST /like (Protected) — toggles; the liked flag alternates per call
func (ctl *LikeController) Toggle(c *gin.Context) {
	uid, ok := utils.UserIDFromCtx(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	var req likeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, "restaurantId is required")
		return
	}

	liked, err := ctl.service.Toggle(req.RestaurantID, uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"liked": liked})
}

// GET /likes/:restaurantId (Protected)
func (ctl *LikeController) Status(c *gin.Context) {
	uid, ok := utils.UserIDFromCtx(c)
	if !ok {
		resp.Unauthorized(c, "unauthorized")
		return
	}
	id, err := strconv.Atoi(c.Param("restaurantId"))
	if err != nil {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}

	liked, count, err := ctl.service.Status(uint(id), uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"liked": liked, "total": count})
}
