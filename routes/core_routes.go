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

func RegisterCoreRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	restRepo := repository.NewRestaurantRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	restCtrl := controllers.NewRestaurantController(services.NewRestaurantService(restRepo, reviewRepo, likeRepo))
	reviewCtrl := controllers.NewReviewController(services.NewReviewService(reviewRepo, restRepo))
	likeCtrl := controllers.NewLikeController(services.NewLikeService(likeRepo, restRepo))

	// public
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/reviews/:restaurantId", reviewCtrl.ListForRestaurant)

	// protected
	auth := r.Group("", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		auth.POST("/restaurants", restCtrl.Create)
		auth.PUT("/restaurants/:id", restCtrl.Update)
		auth.DELETE("/restaurants/:id", restCtrl.Delete)

		auth.POST("/reviews", reviewCtrl.Create)
		auth.PUT("/reviews/:reviewId", reviewCtrl.Update)
		auth.DELETE("/reviews/:reviewId", reviewCtrl.Delete)

		auth.POST("/like", likeCtrl.Toggle)
		auth.GET("/likes/:restaurantId", likeCtrl.Status)
	}
}
