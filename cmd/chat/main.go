package main

import (
	"fmt"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/configs"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/middlewares"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/logger"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/resp"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	log := logger.New("chat")
	resp.SetLogger(log)

	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	hub := routes.RegisterChatRoutes(r, configs.DB(), cfg, log)
	go hub.Run()

	addr := fmt.Sprintf(":%s", cfg.ChatPort)
	log.Info().Str("addr", addr).Msg("chat service listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
