package routes

import (
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/configs"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/controllers"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/middlewares"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/repository"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/services"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/ws"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func RegisterChatRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, log zerolog.Logger) *ws.ChatHub {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	chatSvc := services.NewChatService(repository.NewMessageRepository(db))
	chatCtrl := controllers.NewChatController(chatSvc)

	r.GET("/messages", chatCtrl.History)

	hub := ws.NewChatHub(chatSvc, log)
	r.GET("/ws", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)

	return hub
}
