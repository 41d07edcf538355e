package main

import (
	"fmt"

	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/configs"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/gateway"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/middlewares"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()
	log := logger.New("gateway")

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	r.Use(gateway.BodyLimit(cfg.MaxBodyBytes))

	upstreams := []struct {
		prefix string
		target string
	}{
		{"/auth", cfg.AuthURL},
		{"/api", cfg.CoreURL},
		{"/chat", cfg.ChatURL},
	}
	for _, u := range upstreams {
		proxy, err := gateway.NewProxy(u.target, u.prefix)
		if err != nil {
			log.Fatal().Err(err).Str("target", u.target).Msg("bad upstream url")
		}
		r.Any(u.prefix+"/*path", proxy)
	}

	addr := fmt.Sprintf(":%s", cfg.GatewayPort)
	log.Info().Str("addr", addr).Msg("gateway listening")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
