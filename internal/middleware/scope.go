package middleware

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const scopeCookieName = "sarte_scope"

var scopeCookies *sessions.CookieStore

// InitScopeCookies configure le cookie store qui mémorise le scope de
// stockage d'un navigateur (30 jours, HttpOnly).
func InitScopeCookies() {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		log.Println("⚠️ SESSION_SECRET manquant, secret de développement utilisé")
		secret = "dev-secret-sarte"
	}

	scopeCookies = sessions.NewCookieStore([]byte(secret))
	scopeCookies.MaxAge(86400 * 30)
	scopeCookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}
}

// StorageScope résout le scope de stockage de la requête, l'équivalent
// serveur du localStorage d'un navigateur. Priorité : token de session,
// puis header X-Storage-Scope (clients mobiles), puis cookie. Un nouveau
// scope est créé pour un navigateur inconnu.
func StorageScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Scope du token de session (Bearer)
		if tokenString := bearerToken(c); tokenString != "" {
			if scopeID, email, err := parseSessionToken(tokenString); err == nil {
				c.Set("scope_id", scopeID)
				c.Set("email", email)
				c.Header("X-Storage-Scope", scopeID)
				c.Next()
				return
			}
		}

		// 2. Header explicite
		if scopeID := c.GetHeader("X-Storage-Scope"); scopeID != "" {
			c.Set("scope_id", scopeID)
			c.Header("X-Storage-Scope", scopeID)
			c.Next()
			return
		}

		// 3. Cookie du navigateur, créé à la première visite
		session, _ := scopeCookies.Get(c.Request, scopeCookieName)
		scopeID, _ := session.Values["scope_id"].(string)
		if scopeID == "" {
			scopeID = uuid.NewString()
			session.Values["scope_id"] = scopeID
			if err := session.Save(c.Request, c.Writer); err != nil {
				log.Printf("⚠️ Échec écriture du cookie de scope: %v", err)
			}
		}

		c.Set("scope_id", scopeID)
		c.Header("X-Storage-Scope", scopeID)
		c.Next()
	}
}
