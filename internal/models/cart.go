package models

// CartItem référence un item du menu sélectionné par le client.
// Invariant : Quantity >= 1 tant que l'item est présent dans le panier.
type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}
