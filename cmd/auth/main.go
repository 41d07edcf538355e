package main

import (
	"fmt"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/configs"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/middlewares"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/logger"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/resp"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/routes"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/services"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	log := logger.New("auth")
	resp.SetLogger(log)

	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	routes.RegisterAuthRoutes(r, configs.DB(), cfg, services.LogMailer{Log: log})

	addr := fmt.Sprintf(":%s", cfg.AuthPort)
	log.Info().Str("addr", addr).Msg("auth service listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
