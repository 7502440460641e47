package handlers

import (
	"errors"
	"log"
	"net/http"

	"sarte_back_end/internal/models"
	"sarte_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

// OrderHandler expose l'historique des commandes du scope et le checkout.
type OrderHandler struct {
	scopes *store.Manager
}

func NewOrderHandler(scopes *store.Manager) *OrderHandler {
	return &OrderHandler{scopes: scopes}
}

// GET /api/orders — plus récente en premier
func (h *OrderHandler) ListOrders(c *gin.Context) {
	sc := h.scopes.Scope(c.Request.Context(), c.GetString("scope_id"))

	orders := sc.Orders.List()
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// GET /api/orders/:id
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	sc := h.scopes.Scope(c.Request.Context(), c.GetString("scope_id"))

	order, err := sc.Orders.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// 🟢 POST /api/orders — checkout
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var input struct {
		Address       string `json:"address"`
		Phone         string `json:"phone"`
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.Address == "" || input.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Adresse et téléphone obligatoires"})
		return
	}
	if !models.ValidPaymentMethod(input.PaymentMethod) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Moyen de paiement invalide"})
		return
	}

	sc := h.scopes.Scope(c.Request.Context(), c.GetString("scope_id"))

	items := sc.Cart.Items()
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Panier vide"})
		return
	}

	order, err := sc.Orders.PlaceOrder(c.Request.Context(), items, input.Address, input.Phone, input.PaymentMethod)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création de la commande"})
		return
	}

	// Checkout réussi : le panier est vidé
	sc.Cart.Clear(c.Request.Context())

	log.Printf("✅ Commande %s créée (scope %s, total %.2f)", order.ID, sc.ID, order.Total)
	c.JSON(http.StatusCreated, gin.H{"order": order})
}

// 🔁 PUT /api/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	sc := h.scopes.Scope(c.Request.Context(), c.GetString("scope_id"))

	err := sc.Orders.SetStatus(c.Request.Context(), c.Param("id"), input.Status)
	switch {
	case errors.Is(err, store.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu"})
		return
	case errors.Is(err, store.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": "Transition de statut interdite"})
		return
	case errors.Is(err, store.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour du statut"})
		return
	}

	order, _ := sc.Orders.Get(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"order": order})
}
