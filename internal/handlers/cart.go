package handlers

import (
	"net/http"

	"sarte_back_end/internal/catalog"
	"sarte_back_end/internal/models"
	"sarte_back_end/internal/store"

	"github.com/gin-gonic/gin"
)

// CartHandler expose le panier du scope. Accessible sans session : le
// panier d'un navigateur existe avant toute connexion.
type CartHandler struct {
	scopes *store.Manager
}

func NewCartHandler(scopes *store.Manager) *CartHandler {
	return &CartHandler{scopes: scopes}
}

// GET /api/cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sc := h.scopes.Scope(c.Request.Context(), c.GetString("scope_id"))
	c.JSON(http.StatusOK, gin.H{"items": cartItems(sc)})
}

// GET /api/cart/count
func (h *CartHandler) GetCount(c *gin.Context) {
	sc := h.scopes.Scope(c.Request.Context(), c.GetString("scope_id"))
	c.JSON(http.StatusOK, gin.H{"count": sc.Cart.ItemCount()})
}

// 🟢 POST /api/cart/add
func (h *CartHandler) AddToCart(c *gin.Context) {
	var input struct {
		ItemID string `json:"itemId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	item := catalog.ByID(input.ItemID)
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plat introuvable"})
		return
	}

	sc := h.scopes.Scope(c.Request.Context(), c.GetString("scope_id"))
	// Premier ajout : quantité 1. Item déjà présent : l'ajout ne change
	// pas la quantité, les ajustements passent par /quantity
	sc.Cart.AddItem(c.Request.Context(), *item)

	c.JSON(http.StatusOK, gin.H{
		"message": "Plat ajouté au panier",
		"items":   cartItems(sc),
		"count":   sc.Cart.ItemCount(),
	})
}

// 🔁 PUT /api/cart/quantity
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var input struct {
		ItemID   string `json:"itemId"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.ItemID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	sc := h.scopes.Scope(c.Request.Context(), c.GetString("scope_id"))
	// <= 0 supprime l'item, > 99 est ramené à 99 : jamais d'erreur
	sc.Cart.SetQuantity(c.Request.Context(), input.ItemID, input.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"items": cartItems(sc),
		"count": sc.Cart.ItemCount(),
	})
}

// ❌ DELETE /api/cart/:itemId
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sc := h.scopes.Scope(c.Request.Context(), c.GetString("scope_id"))
	sc.Cart.RemoveItem(c.Request.Context(), c.Param("itemId"))

	c.JSON(http.StatusOK, gin.H{
		"message": "Plat retiré du panier",
		"items":   cartItems(sc),
	})
}

// 🧹 DELETE /api/cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sc := h.scopes.Scope(c.Request.Context(), c.GetString("scope_id"))
	sc.Cart.Clear(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}

// cartItems garantit une liste JSON (jamais null)
func cartItems(sc *store.Scope) []models.CartItem {
	items := sc.Cart.Items()
	if items == nil {
		return []models.CartItem{}
	}
	return items
}
