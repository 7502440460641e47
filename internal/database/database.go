package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis est le client partagé (persistance des scopes + rate limiting).
// Reste nil quand Redis est indisponible : le serveur bascule alors en
// stockage mémoire, perdu au redémarrage.
var Redis *redis.Client

// ConnectRedis initialise le client Redis. Retourne false en mode dégradé.
func ConnectRedis() bool {
	addr := os.Getenv("REDIS_HOST")
	if addr == "" {
		addr = "localhost:6379"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis injoignable (%s), stockage mémoire utilisé: %v", addr, err)
		return false
	}

	Redis = client
	log.Println("✅ Connecté à Redis")
	return true
}
