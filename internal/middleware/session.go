package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateSessionToken signe un token de session portant le scope de
// stockage et l'email. Expire après 24h.
func GenerateSessionToken(scopeID, email string) (string, error) {
	claims := jwt.MapClaims{
		"scope_id": scopeID,
		"email":    email,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// parseSessionToken valide le token et retourne (scopeID, email)
func parseSessionToken(tokenString string) (string, string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("méthode de signature inattendue: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", "", fmt.Errorf("token invalide")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", fmt.Errorf("claims invalides")
	}
	scopeID, _ := claims["scope_id"].(string)
	email, _ := claims["email"].(string)
	if scopeID == "" {
		return "", "", fmt.Errorf("scope_id manquant")
	}
	return scopeID, email, nil
}

// bearerToken extrait le token du header Authorization, ou ""
func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// AuthRequired protège les routes qui exigent une session active.
// Le token valide fixe aussi le scope de stockage de la requête.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token manquant"})
			c.Abort()
			return
		}

		scopeID, email, err := parseSessionToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token invalide"})
			c.Abort()
			return
		}

		c.Set("scope_id", scopeID)
		c.Set("email", email)
		c.Next()
	}
}
