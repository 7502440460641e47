package auth

import (
	"context"
	"strings"
	"time"

	"sarte_back_end/internal/models"
)

// SignUpInput regroupe les champs du formulaire d'inscription.
// Le mot de passe est consommé ici puis jeté : il n'apparaît jamais
// dans l'objet User retourné.
type SignUpInput struct {
	FirstName      string
	LastName       string
	Email          string
	PhoneNumber    string
	Password       string
	ProfilePicture string
}

// Client est l'interface qu'un vrai backend d'authentification
// implémenterait. Les appelants ne voient que cette interface : brancher
// un vrai serveur d'auth ne change rien côté stores.
type Client interface {
	SignIn(ctx context.Context, email, password string) (models.User, error)
	SignUp(ctx context.Context, input SignUpInput) (models.User, error)
}

// SimulatedClient simule l'appel réseau : un délai fixe, puis succès
// inconditionnel. N'importe quel couple email/mot de passe est accepté,
// et SignIn fabrique le profil à partir du seul email (comportement démo
// assumé, voir DESIGN.md).
type SimulatedClient struct {
	Delay time.Duration
}

func NewSimulatedClient(delay time.Duration) *SimulatedClient {
	return &SimulatedClient{Delay: delay}
}

func (c *SimulatedClient) SignIn(ctx context.Context, email, password string) (models.User, error) {
	if err := c.wait(ctx); err != nil {
		return models.User{}, err
	}

	// Identité dérivée du seul email : pas de vérification du mot de
	// passe, pas de lookup d'un profil existant
	return models.User{
		Email:    email,
		Username: usernameFromEmail(email),
	}, nil
}

func (c *SimulatedClient) SignUp(ctx context.Context, input SignUpInput) (models.User, error) {
	if err := c.wait(ctx); err != nil {
		return models.User{}, err
	}

	return models.User{
		Email:          input.Email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Username:       usernameFromEmail(input.Email),
		PhoneNumber:    input.PhoneNumber,
		ProfilePicture: input.ProfilePicture,
	}, nil
}

// wait attend le délai simulé, annulable par le contexte
func (c *SimulatedClient) wait(ctx context.Context) error {
	if c.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(c.Delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func usernameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
