package routes

import (
	"time"

	"github.com/gatherly/gatherly/internal/container"
	"github.com/gatherly/gatherly/internal/handlers"
	"github.com/gatherly/gatherly/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	auth := middleware.Auth(container.TokenIssuer)

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":    "Server is running",
				"timestamp": time.Now(),
			})
		})

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", handlers.Register(container.AccountService))
			authRoutes.POST("/login", handlers.Login(container.AccountService))
			authRoutes.POST("/google", handlers.GoogleLogin(container.AccountService))

			authRoutes.GET("/:userId", auth, handlers.GetProfile(container.AccountService))
			authRoutes.PUT("/:userId", auth, handlers.UpdateProfile(container.AccountService))
			authRoutes.DELETE("/:userId", auth, handlers.DeleteAccount(container.AccountService))
			authRoutes.POST("/:userId/avatar", auth, handlers.UploadAvatar(container.AccountService))
		}

		eventRoutes := api.Group("/events")
		{
			eventRoutes.GET("", handlers.ListEvents(container.EventService))
			eventRoutes.GET("/:id", handlers.GetEvent(container.EventService))
			eventRoutes.POST("", auth, handlers.CreateEvent(container.EventService))
			eventRoutes.PUT("/:id", auth, handlers.UpdateEvent(container.EventService))
			eventRoutes.DELETE("/:id", auth, handlers.DeleteEvent(container.EventService))
		}

		bookingRoutes := api.Group("/bookings", auth)
		{
			bookingRoutes.POST("", handlers.CreateBooking(container.BookingService))
			bookingRoutes.GET("/user/:userId", handlers.ListUserBookings(container.BookingService))
			bookingRoutes.PUT("/:id/cancel", handlers.CancelBooking(container.BookingService))
		}

		favoriteRoutes := api.Group("/favorites", auth)
		{
			favoriteRoutes.GET("/user/:userId", handlers.ListUserFavorites(container.FavoriteService))
			favoriteRoutes.POST("", handlers.AddFavorite(container.FavoriteService))
			favoriteRoutes.DELETE("/:userId/:eventId", handlers.RemoveFavorite(container.FavoriteService))
		}

		reviewRoutes := api.Group("/reviews")
		{
			reviewRoutes.POST("", auth, handlers.CreateReview(container.ReviewService))
			reviewRoutes.GET("/event/:eventId", handlers.ListEventReviews(container.ReviewService))
		}
	}

	return r
}
