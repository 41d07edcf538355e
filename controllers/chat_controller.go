package controllers

import (
	"strconv"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/resp"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/services"
	"github.com/gin-gonic/gin"
)

type ChatController struct {
	service *services.ChatService
}

func NewChatController(s *services.ChatService) *ChatController {
	return &ChatController{service: s}
}

// GET /messages?room=&limit= — history oldest-first
func (ctl *ChatController) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	msgs, err := ctl.service.History(c.Query("room"), limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": msgs})
}
