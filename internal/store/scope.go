package store

import (
	"context"
	"sync"

	"sarte_back_end/internal/auth"
	"sarte_back_end/internal/storage"
)

// Scope regroupe les trois state containers d'un même scope de stockage
// (un navigateur). Les trois partagent la même tranche de persistance
// mais restent indépendants à l'exécution.
type Scope struct {
	ID      string
	Session *SessionStore
	Cart    *CartStore
	Orders  *OrdersStore
}

// Hydrate recharge les trois stores depuis le stockage
func (s *Scope) Hydrate(ctx context.Context) {
	s.Session.Hydrate(ctx)
	s.Cart.Hydrate(ctx)
	s.Orders.Hydrate(ctx)
}

// SignOut déconnecte ET vide le panier et l'historique du scope.
// Couplage voulu : les données d'un compte ne doivent pas fuiter vers le
// compte suivant sur le même navigateur.
func (s *Scope) SignOut(ctx context.Context) {
	s.Session.SignOut(ctx)
	s.Cart.Clear(ctx)
	s.Orders.Clear(ctx)
}

// Manager fabrique et met en cache les Scope. Storage et client d'auth
// sont injectés à la construction ; aucun état global.
type Manager struct {
	storage storage.Store
	client  auth.Client

	mu     sync.Mutex
	scopes map[string]*Scope
}

func NewManager(st storage.Store, client auth.Client) *Manager {
	return &Manager{
		storage: st,
		client:  client,
		scopes:  make(map[string]*Scope),
	}
}

// Scope retourne le bundle du scope demandé, hydraté. Le même pointeur
// est retourné pour toutes les requêtes d'un même scope.
func (m *Manager) Scope(ctx context.Context, id string) *Scope {
	m.mu.Lock()
	s, ok := m.scopes[id]
	if !ok {
		s = &Scope{
			ID:      id,
			Session: NewSessionStore(id, m.storage, m.client),
			Cart:    NewCartStore(id, m.storage),
			Orders:  NewOrdersStore(id, m.storage),
		}
		m.scopes[id] = s
	}
	m.mu.Unlock()

	s.Hydrate(ctx)
	return s
}

// Release retire le scope du cache (teardown après déconnexion).
// La prochaine requête du scope réhydratera depuis le stockage.
func (m *Manager) Release(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.scopes, id)
}
