package models

// User représente la session côté client : le profil de l'utilisateur
// connecté. Le mot de passe n'est JAMAIS stocké dans cet objet.
type User struct {
	Email           string `json:"email"`
	FirstName       string `json:"firstName,omitempty"`
	LastName        string `json:"lastName,omitempty"`
	Username        string `json:"username,omitempty"`
	PhoneNumber     string `json:"phoneNumber,omitempty"`
	DeliveryAddress string `json:"deliveryAddress,omitempty"`
	PinCode         string `json:"pinCode,omitempty"`
	// ProfilePicture est une data URL encodée (image inline, max 5 Mo)
	ProfilePicture string `json:"profilePicture,omitempty"`
}
