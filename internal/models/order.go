package models

import "time"

// Statuts possibles d'une commande
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// Moyens de paiement acceptés
const (
	PaymentCash   = "cash"
	PaymentCard   = "card"
	PaymentOnline = "online"
)

// Order est créée au checkout à partir d'un snapshot du panier.
// Items et Total sont immuables une fois la commande créée ;
// seul Status évolue ensuite.
type Order struct {
	ID            string     `json:"id"`
	Items         []CartItem `json:"items"`
	Total         float64    `json:"total"`
	Address       string     `json:"address"`
	Phone         string     `json:"phone"`
	PaymentMethod string     `json:"paymentMethod"`
	Status        string     `json:"status"`
	Date          time.Time  `json:"date"`
}

// ValidPaymentMethod vérifie que la méthode fait partie de l'ensemble fermé
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentOnline:
		return true
	}
	return false
}

// ValidOrderStatus vérifie que le statut fait partie de l'ensemble fermé
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}
