package main

import (
	"log"
	"os"
	"time"

	"sarte_back_end/internal/auth"
	"sarte_back_end/internal/config"
	"sarte_back_end/internal/database"
	"sarte_back_end/internal/middleware"
	"sarte_back_end/internal/routes"
	"sarte_back_end/internal/storage"
	"sarte_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

// Délai de l'appel réseau simulé (500ms, comme le vrai front)
const simulatedDelay = 500 * time.Millisecond

func main() {
	config.Load()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET manquant dans .env")
	}

	// Persistance des scopes : Redis, ou mémoire en mode dégradé
	var backend storage.Store
	if database.ConnectRedis() {
		backend = storage.NewRedisStore(database.Redis)
	} else {
		backend = storage.NewMemoryStore()
	}

	middleware.InitScopeCookies()

	authClient := auth.NewSimulatedClient(simulatedDelay)
	scopes := store.NewManager(backend, authClient)

	r := gin.Default()
	routes.RegisterRoutes(r, scopes)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Sarte Restro lancé sur le port", port)
	r.Run(":" + port)
}
