package routes

import (
	"os"
	"strings"

	"sarte_back_end/internal/handlers"
	"sarte_back_end/internal/middleware"
	"sarte_back_end/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, scopes *store.Manager) {
	// CORS : le front tourne sur un autre port en dev
	allowed := os.Getenv("FRONTEND_URL")
	if allowed == "" {
		allowed = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(allowed, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Storage-Scope"},
		ExposeHeaders:    []string{"X-Storage-Scope"},
		AllowCredentials: true,
	}))

	authHandler := handlers.NewAuthHandler(scopes)
	cartHandler := handlers.NewCartHandler(scopes)
	orderHandler := handlers.NewOrderHandler(scopes)
	menuHandler := handlers.NewMenuHandler()

	api := r.Group("/api")
	api.Use(middleware.APIRateLimit(), middleware.StorageScope())

	// Authentification simulée
	auth := api.Group("/auth")
	auth.POST("/signin", authHandler.SignIn)
	auth.POST("/signup", middleware.SignupRateLimit(), authHandler.SignUp)
	auth.POST("/signout", authHandler.SignOut)
	auth.GET("/me", middleware.AuthRequired(), authHandler.Me)

	// Catalogue (lecture seule)
	api.GET("/menu", menuHandler.GetMenu)
	api.GET("/menu/:id", menuHandler.GetMenuItem)

	// Panier (par scope, session non requise)
	cart := api.Group("/cart")
	cart.GET("", cartHandler.GetCart)
	cart.GET("/count", cartHandler.GetCount)
	cart.POST("/add", middleware.CartRateLimit(), cartHandler.AddToCart)
	cart.PUT("/quantity", cartHandler.UpdateQuantity)
	cart.DELETE("/:itemId", cartHandler.RemoveFromCart)
	cart.DELETE("", cartHandler.ClearCart)

	// Commandes (session requise)
	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired())
	orders.GET("", orderHandler.ListOrders)
	orders.GET("/:id", orderHandler.GetOrderByID)
	orders.POST("", orderHandler.PlaceOrder)
	orders.PUT("/:id/status", orderHandler.UpdateStatus)
}
