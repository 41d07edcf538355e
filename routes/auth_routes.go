package routes

import (
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/configs"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/controllers"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/middlewares"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/repository"
	"github.com/AnthonyAlejandroMoralesVargas/huequitas-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterAuthRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, mailer services.Mailer) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	userRepo := repository.NewUserRepository(db)
	authSvc := services.NewAuthService(userRepo, mailer, cfg.JWTSecret, cfg.JWTTTL, cfg.ResetTTL)
	authCtrl := controllers.NewAuthController(authSvc)

	// public
	r.POST("/register", authCtrl.Register)
	r.POST("/login", authCtrl.Login)
	r.POST("/password-reset-request", authCtrl.RequestPasswordReset)
	r.POST("/verify-reset-code", authCtrl.VerifyResetCode)
	r.POST("/password-reset", authCtrl.ResetPassword)

	// protected
	auth := r.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		auth.GET("/verify", authCtrl.Verify)
		auth.GET("/profile", authCtrl.GetProfile)
		auth.PUT("/profile", authCtrl.UpdateProfile)
		auth.POST("/profile/complete-setup", authCtrl.CompleteSetup)
	}
}
