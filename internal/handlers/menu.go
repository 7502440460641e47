package handlers

import (
	"net/http"

	"sarte_back_end/internal/catalog"

	"github.com/gin-gonic/gin"
)

// MenuHandler expose le catalogue fixe. Aucune persistance : les plats
// sont compilés dans le binaire.
type MenuHandler struct{}

func NewMenuHandler() *MenuHandler {
	return &MenuHandler{}
}

// GET /api/menu?category=Pizza
func (h *MenuHandler) GetMenu(c *gin.Context) {
	category := c.Query("category")

	items := catalog.Items()
	if category != "" {
		items = catalog.ByCategory(category)
	}

	c.JSON(http.StatusOK, gin.H{
		"items":      items,
		"categories": catalog.Categories(),
	})
}

// GET /api/menu/:id
func (h *MenuHandler) GetMenuItem(c *gin.Context) {
	item := catalog.ByID(c.Param("id"))
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Plat introuvable"})
		return
	}
	c.JSON(http.StatusOK, item)
}
