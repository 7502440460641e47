package store

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"sarte_back_end/internal/auth"
	"sarte_back_end/internal/models"
	"sarte_back_end/internal/storage"
)

// SessionStore contient l'utilisateur connecté du scope (ou personne).
// Au plus une session active par scope : chaque sign-in/sign-up écrase la
// précédente. L'absence d'entrée persistée signifie "déconnecté".
type SessionStore struct {
	scope   string
	storage storage.Store
	client  auth.Client

	mu       sync.Mutex
	user     *models.User
	hydrated bool
}

func NewSessionStore(scope string, st storage.Store, client auth.Client) *SessionStore {
	return &SessionStore{scope: scope, storage: st, client: client}
}

// Hydrate recharge la session depuis le stockage. Appelé une seule fois.
func (s *SessionStore) Hydrate(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.hydrated {
		return
	}
	s.hydrated = true

	data, err := s.storage.Get(ctx, s.scope, storage.KeyUser)
	if err != nil {
		return // pas de session : déconnecté
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		log.Printf("⚠️ Session corrompue pour le scope %s, déconnexion forcée: %v", s.scope, err)
		return
	}
	s.user = &user
}

// IsLoading indique si l'hydratation initiale n'a pas encore eu lieu
func (s *SessionStore) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.hydrated
}

// CurrentUser retourne l'utilisateur connecté, ou nil
func (s *SessionStore) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// SignIn authentifie via le client (simulé : délai fixe puis succès).
// La validation des champs est faite par l'appelant, pas ici.
func (s *SessionStore) SignIn(ctx context.Context, email, password string) (models.User, error) {
	user, err := s.client.SignIn(ctx, email, password)
	if err != nil {
		return models.User{}, err
	}
	s.setUser(ctx, user)
	return user, nil
}

// SignUp enregistre un nouveau profil. Le mot de passe est transmis au
// client puis oublié : il n'est jamais persisté. Pas de contrôle
// d'unicité : chaque inscription écrase simplement la session courante.
func (s *SessionStore) SignUp(ctx context.Context, input auth.SignUpInput) (models.User, error) {
	user, err := s.client.SignUp(ctx, input)
	if err != nil {
		return models.User{}, err
	}
	s.setUser(ctx, user)
	return user, nil
}

// UpdateProfile remplace le profil de la session courante et le persiste.
// Utilisé pour les champs optionnels (adresse de livraison, code postal).
func (s *SessionStore) UpdateProfile(ctx context.Context, user models.User) {
	s.setUser(ctx, user)
}

// SignOut efface la session. L'effacement du panier et des commandes du
// scope est orchestré par Scope.SignOut.
func (s *SessionStore) SignOut(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.storage.Delete(ctx, s.scope, storage.KeyUser); err != nil {
		log.Printf("⚠️ Échec suppression de la session (scope %s): %v", s.scope, err)
	}
}

func (s *SessionStore) setUser(ctx context.Context, user models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &user
	data, err := json.Marshal(user)
	if err != nil {
		log.Printf("⚠️ Échec sérialisation de la session (scope %s): %v", s.scope, err)
		return
	}
	if err := s.storage.Set(ctx, s.scope, storage.KeyUser, data); err != nil {
		log.Printf("⚠️ Échec écriture de la session (scope %s), état conservé en mémoire: %v", s.scope, err)
	}
}
