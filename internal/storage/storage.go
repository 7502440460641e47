package storage

import (
	"context"
	"errors"
)

// Clés fixes du stockage local, une par store
const (
	KeyUser   = "user"
	KeyCart   = "cart"
	KeyOrders = "orders"
)

var ErrNotFound = errors.New("entrée introuvable")

// Store est le port de persistance des trois state containers.
// Chaque scope correspond à un navigateur : ses entrées JSON sont isolées
// des autres scopes. Un vrai backend pourrait implémenter cette interface
// sans toucher aux stores.
type Store interface {
	// Get retourne le blob JSON stocké sous (scope, key), ou ErrNotFound
	Get(ctx context.Context, scope, key string) ([]byte, error)
	// Set écrase le blob JSON stocké sous (scope, key)
	Set(ctx context.Context, scope, key string, data []byte) error
	// Delete supprime l'entrée ; sans effet si elle n'existe pas
	Delete(ctx context.Context, scope, key string) error
}
