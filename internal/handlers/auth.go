package handlers

import (
	"log"
	"net/http"
	"strings"

	"sarte_back_end/internal/auth"
	"sarte_back_end/internal/middleware"
	"sarte_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

// Taille maximale du profil encodé en data URL (5 Mo d'image, marge base64)
const maxProfilePictureLen = 5*1024*1024*4/3 + 512

// AuthHandler expose l'inscription, la connexion simulée et la
// déconnexion. La validation des formulaires vit ici, côté appelant :
// les stores n'en font aucune.
type AuthHandler struct {
	scopes *store.Manager
}

func NewAuthHandler(scopes *store.Manager) *AuthHandler {
	return &AuthHandler{scopes: scopes}
}

// 🟢 POST /api/auth/signin
func (h *AuthHandler) SignIn(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Email == "" || input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez remplir tous les champs"})
		return
	}

	scopeID := c.GetString("scope_id")
	sc := h.scopes.Scope(c.Request.Context(), scopeID)

	user, err := sc.Session.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		// Seule une annulation du contexte peut arriver ici : l'appel
		// simulé ne peut pas échouer une fois la validation passée
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion"})
		return
	}

	token, err := middleware.GenerateSessionToken(scopeID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération du token"})
		return
	}

	log.Printf("✅ Connexion réussie: %s (scope %s)", user.Email, scopeID)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// 🟢 POST /api/auth/signup
func (h *AuthHandler) SignUp(c *gin.Context) {
	var input struct {
		FirstName       string `json:"firstName"`
		LastName        string `json:"lastName"`
		Email           string `json:"email"`
		PhoneNumber     string `json:"phoneNumber"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
		ProfilePicture  string `json:"profilePicture"`
		DeliveryAddress string `json:"deliveryAddress"`
		PinCode         string `json:"pinCode"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.FirstName == "" || input.LastName == "" || input.Email == "" ||
		input.PhoneNumber == "" || input.Password == "" || input.ConfirmPassword == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez remplir tous les champs"})
		return
	}
	if input.Password != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Les mots de passe ne correspondent pas"})
		return
	}
	if len(input.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le mot de passe doit contenir au moins 6 caractères"})
		return
	}
	if input.ProfilePicture != "" {
		if !strings.HasPrefix(input.ProfilePicture, "data:image/") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez sélectionner une image valide"})
			return
		}
		if len(input.ProfilePicture) > maxProfilePictureLen {
			c.JSON(http.StatusBadRequest, gin.H{"error": "L'image ne doit pas dépasser 5 Mo"})
			return
		}
	}
	if input.PinCode != "" && !validPinCode(input.PinCode) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le code postal doit contenir 6 chiffres"})
		return
	}

	scopeID := c.GetString("scope_id")
	sc := h.scopes.Scope(c.Request.Context(), scopeID)

	user, err := sc.Session.SignUp(c.Request.Context(), auth.SignUpInput{
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Email:          input.Email,
		PhoneNumber:    input.PhoneNumber,
		Password:       input.Password,
		ProfilePicture: input.ProfilePicture,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création du compte"})
		return
	}

	// Champs de profil optionnels du formulaire étendu
	if input.DeliveryAddress != "" || input.PinCode != "" {
		user.DeliveryAddress = input.DeliveryAddress
		user.PinCode = input.PinCode
		sc.Session.UpdateProfile(c.Request.Context(), user)
	}

	token, err := middleware.GenerateSessionToken(scopeID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération du token"})
		return
	}

	log.Printf("✅ Compte créé: %s (scope %s)", user.Email, scopeID)
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": user})
}

// ❌ POST /api/auth/signout
func (h *AuthHandler) SignOut(c *gin.Context) {
	scopeID := c.GetString("scope_id")
	sc := h.scopes.Scope(c.Request.Context(), scopeID)

	// Déconnexion = session, panier ET commandes effacés pour le scope
	sc.SignOut(c.Request.Context())
	h.scopes.Release(scopeID)

	log.Printf("✅ Déconnexion du scope %s", scopeID)
	c.JSON(http.StatusOK, gin.H{"message": "Déconnexion réussie"})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	scopeID := c.GetString("scope_id")
	sc := h.scopes.Scope(c.Request.Context(), scopeID)

	user := sc.Session.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Utilisateur non authentifié"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func validPinCode(pin string) bool {
	if len(pin) != 6 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
