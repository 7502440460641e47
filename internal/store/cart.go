package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"sarte_back_end/internal/models"
	"sarte_back_end/internal/storage"
)

// Quantité maximale par item du panier
const MaxQuantity = 99

// CartStore contient les items que le scope compte commander.
// Chaque mutation réécrit immédiatement la collection complète dans le
// stockage. Les transitions pures (applyAdd, applySetQuantity, ...) sont
// séparées de la persistance pour rester testables sans backend.
type CartStore struct {
	scope   string
	storage storage.Store

	mu       sync.Mutex
	items    []models.CartItem
	hydrated bool
}

func NewCartStore(scope string, st storage.Store) *CartStore {
	return &CartStore{scope: scope, storage: st}
}

// Hydrate recharge le panier depuis le stockage. Appelé une seule fois,
// au premier accès du scope.
func (s *CartStore) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return
	}
	s.hydrated = true

	data, err := s.storage.Get(ctx, s.scope, storage.KeyCart)
	if err != nil {
		return // pas d'entrée : panier vide
	}
	if err := json.Unmarshal(data, &s.items); err != nil {
		log.Printf("⚠️ Panier corrompu pour le scope %s, on repart à vide: %v", s.scope, err)
		s.items = nil
	}
}

// AddItem insère l'item du catalogue avec quantité 1 s'il est absent.
// S'il est déjà présent, l'appel ne change pas la quantité : les
// ajustements passent par SetQuantity.
func (s *CartStore) AddItem(ctx context.Context, item models.MenuItem) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := applyAdd(s.items, item)
	if !changed {
		return
	}
	s.items = next
	s.persist(ctx)
}

// SetQuantity ajuste la quantité d'un item. Une valeur <= 0 supprime
// l'item ; une valeur > 99 est ramenée à 99. Aucune erreur n'est
// remontée pour une valeur hors bornes.
func (s *CartStore) SetQuantity(ctx context.Context, id string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := applySetQuantity(s.items, id, quantity)
	if !changed {
		return
	}
	s.items = next
	s.persist(ctx)
}

// RemoveItem supprime l'item quelle que soit sa quantité. Idempotent.
func (s *CartStore) RemoveItem(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := applyRemove(s.items, id)
	if !changed {
		return
	}
	s.items = next
	s.persist(ctx)
}

// Clear vide le panier (après checkout ou à la déconnexion)
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	if err := s.storage.Delete(ctx, s.scope, storage.KeyCart); err != nil {
		log.Printf("⚠️ Échec suppression du panier (scope %s): %v", s.scope, err)
	}
}

// Items retourne une copie de la collection
func (s *CartStore) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// ItemCount retourne la somme des quantités, pour le badge du panier.
// Toujours cohérent avec la dernière mutation.
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return countItems(s.items)
}

// persist sérialise la collection complète. En cas d'échec du stockage on
// garde l'état en mémoire pour la durée de la session et on trace.
func (s *CartStore) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("⚠️ Échec sérialisation du panier (scope %s): %v", s.scope, err)
		return
	}
	if err := s.storage.Set(ctx, s.scope, storage.KeyCart, data); err != nil {
		log.Printf("⚠️ Échec écriture du panier (scope %s), état conservé en mémoire: %v", s.scope, err)
	}
}

// ---------- transitions pures ----------

func applyAdd(items []models.CartItem, item models.MenuItem) ([]models.CartItem, bool) {
	for _, existing := range items {
		if existing.ID == item.ID {
			return items, false
		}
	}
	next := make([]models.CartItem, len(items), len(items)+1)
	copy(next, items)
	next = append(next, models.CartItem{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
		Image:    item.Image,
	})
	return next, true
}

func applySetQuantity(items []models.CartItem, id string, quantity int) ([]models.CartItem, bool) {
	// 0 ou négatif = suppression explicite, jamais de quantité nulle stockée
	if quantity <= 0 {
		return applyRemove(items, id)
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}

	for i, existing := range items {
		if existing.ID != id {
			continue
		}
		if existing.Quantity == quantity {
			return items, false
		}
		next := make([]models.CartItem, len(items))
		copy(next, items)
		next[i].Quantity = quantity
		return next, true
	}
	return items, false
}

func applyRemove(items []models.CartItem, id string) ([]models.CartItem, bool) {
	next := make([]models.CartItem, 0, len(items))
	for _, existing := range items {
		if existing.ID != id {
			next = append(next, existing)
		}
	}
	if len(next) == len(items) {
		return items, false
	}
	return next, true
}

func countItems(items []models.CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total
}
