package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"strconv"
	"sync"
	"time"

	"sarte_back_end/internal/models"
	"sarte_back_end/internal/storage"
)

// Taux de TVA appliqué au sous-total
const TaxRate = 0.10

var (
	ErrOrderNotFound     = errors.New("commande introuvable")
	ErrInvalidStatus     = errors.New("statut inconnu")
	ErrInvalidTransition = errors.New("transition de statut interdite")
	ErrEmptyOrder        = errors.New("commande vide")
)

// Transitions de statut autorisées. delivered et cancelled sont des états
// terminaux : on ne peut pas annuler une commande livrée ni relivrer une
// commande annulée.
var statusTransitions = map[string][]string{
	models.OrderStatusPending:   {models.OrderStatusPreparing, models.OrderStatusDelivered, models.OrderStatusCancelled},
	models.OrderStatusPreparing: {models.OrderStatusDelivered, models.OrderStatusCancelled},
	models.OrderStatusDelivered: {},
	models.OrderStatusCancelled: {},
}

// OrdersStore accumule l'historique des commandes du scope, la plus
// récente en premier. Items et Total sont figés à la création ; seul le
// statut évolue ensuite.
type OrdersStore struct {
	scope   string
	storage storage.Store
	now     func() time.Time

	mu       sync.Mutex
	orders   []models.Order
	hydrated bool
	lastID   int64
}

func NewOrdersStore(scope string, st storage.Store) *OrdersStore {
	return &OrdersStore{scope: scope, storage: st, now: time.Now}
}

// Hydrate recharge l'historique depuis le stockage. Appelé une seule fois.
func (s *OrdersStore) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return
	}
	s.hydrated = true

	data, err := s.storage.Get(ctx, s.scope, storage.KeyOrders)
	if err != nil {
		return
	}
	if err := json.Unmarshal(data, &s.orders); err != nil {
		log.Printf("⚠️ Historique de commandes corrompu pour le scope %s: %v", s.scope, err)
		s.orders = nil
	}
}

// PlaceOrder crée une commande depuis un snapshot du panier : copie
// profonde des items, total = sous-total + 10% de TVA arrondi au
// centime, id unique basé sur l'horloge, statut pending. La commande est
// insérée en tête de liste (plus récente en premier).
func (s *OrdersStore) PlaceOrder(ctx context.Context, items []models.CartItem, address, phone, paymentMethod string) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, ErrEmptyOrder
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Copie indépendante : les mutations ultérieures du panier ne doivent
	// pas toucher la commande
	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)

	subtotal := 0.0
	for _, item := range snapshot {
		subtotal += item.Price * float64(item.Quantity)
	}

	now := s.now()
	order := models.Order{
		ID:            s.nextID(now),
		Items:         snapshot,
		Total:         round2(subtotal * (1 + TaxRate)),
		Address:       address,
		Phone:         phone,
		PaymentMethod: paymentMethod,
		Status:        models.OrderStatusPending,
		Date:          now,
	}

	s.orders = append([]models.Order{order}, s.orders...)
	s.persist(ctx)
	return order, nil
}

// SetStatus remplace le statut de la commande. L'état n'est jamais
// modifié si l'id est inconnu, si le statut n'existe pas ou si la
// transition est interdite.
func (s *OrdersStore) SetStatus(ctx context.Context, orderID, status string) error {
	if !models.ValidOrderStatus(status) {
		return ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if !transitionAllowed(s.orders[i].Status, status) {
			return ErrInvalidTransition
		}
		s.orders[i].Status = status
		s.persist(ctx)
		return nil
	}
	return ErrOrderNotFound
}

// List retourne une copie de l'historique, plus récente en premier
func (s *OrdersStore) List() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Get retourne la commande correspondante, ou ErrOrderNotFound
func (s *OrdersStore) Get(orderID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, order := range s.orders {
		if order.ID == orderID {
			return order, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// Clear efface l'historique du scope. Uniquement appelé à la déconnexion :
// les commandes ne doivent pas fuiter d'un compte à l'autre sur le même
// navigateur.
func (s *OrdersStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.orders = nil
	if err := s.storage.Delete(ctx, s.scope, storage.KeyOrders); err != nil {
		log.Printf("⚠️ Échec suppression des commandes (scope %s): %v", s.scope, err)
	}
}

// nextID génère un id unique basé sur l'horloge (millisecondes).
// Deux commandes dans la même milliseconde recevraient le même id, donc
// on force la monotonie.
func (s *OrdersStore) nextID(now time.Time) string {
	candidate := now.UnixMilli()
	if candidate <= s.lastID {
		candidate = s.lastID + 1
	}
	s.lastID = candidate
	return strconv.FormatInt(candidate, 10)
}

func (s *OrdersStore) persist(ctx context.Context) {
	data, err := json.Marshal(s.orders)
	if err != nil {
		log.Printf("⚠️ Échec sérialisation des commandes (scope %s): %v", s.scope, err)
		return
	}
	if err := s.storage.Set(ctx, s.scope, storage.KeyOrders, data); err != nil {
		log.Printf("⚠️ Échec écriture des commandes (scope %s), état conservé en mémoire: %v", s.scope, err)
	}
}

func transitionAllowed(from, to string) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// round2 arrondit au centime (half-up) : 28.578 -> 28.58
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
