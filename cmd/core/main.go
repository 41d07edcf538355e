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
	log := logger.New("core")
	resp.SetLogger(log)

	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))

	routes.RegisterCoreRoutes(r, configs.DB(), cfg)

	addr := fmt.Sprintf(":%s", cfg.CorePort)
	log.Info().Str("addr", addr).Msg("core service listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
