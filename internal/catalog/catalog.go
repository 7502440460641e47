package catalog

import "sarte_back_end/internal/models"

// Catalogue fixe du restaurant. Lecture seule : jamais modifié ni persisté.
var items = []models.MenuItem{
	{
		ID:          "1",
		Name:        "Margherita Pizza",
		Description: "Classic pizza with fresh tomatoes, mozzarella, and basil",
		Price:       12.99,
		Category:    "Pizza",
		Image:       "https://images.unsplash.com/photo-1574071318508-1cdbab80d002?w=600&h=600&fit=crop",
	},
	{
		ID:          "2",
		Name:        "Pepperoni Pizza",
		Description: "Traditional pizza with pepperoni and mozzarella cheese",
		Price:       14.99,
		Category:    "Pizza",
		Image:       "https://images.unsplash.com/photo-1628840042765-356cda07504e?w=600&h=600&fit=crop",
	},
	{
		ID:          "3",
		Name:        "Chicken Burger",
		Description: "Juicy grilled chicken patty with fresh vegetables",
		Price:       9.99,
		Category:    "Burgers",
		Image:       "https://images.unsplash.com/photo-1606755962773-d324e588a96b?w=600&h=600&fit=crop",
	},
	{
		ID:          "4",
		Name:        "Beef Burger",
		Description: "Classic beef burger with lettuce, tomato, and special sauce",
		Price:       10.99,
		Category:    "Burgers",
		Image:       "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?w=600&h=600&fit=crop",
	},
	{
		ID:          "5",
		Name:        "Caesar Salad",
		Description: "Fresh romaine lettuce with caesar dressing and croutons",
		Price:       8.99,
		Category:    "Salads",
		Image:       "https://images.unsplash.com/photo-1546793665-c74683f339c1?w=600&h=600&fit=crop",
	},
	{
		ID:          "6",
		Name:        "Grilled Chicken",
		Description: "Tender grilled chicken breast with herbs and spices",
		Price:       15.99,
		Category:    "Main Course",
		Image:       "https://images.unsplash.com/photo-1532550907401-a500c9a57435?w=600&h=600&fit=crop",
	},
	{
		ID:          "7",
		Name:        "Pasta Carbonara",
		Description: "Creamy pasta with bacon, eggs, and parmesan cheese",
		Price:       13.99,
		Category:    "Pasta",
		Image:       "https://images.unsplash.com/photo-1621996346565-e3dbc646d9a9?w=600&h=600&fit=crop",
	},
	{
		ID:          "8",
		Name:        "Fish & Chips",
		Description: "Crispy battered fish with golden fries",
		Price:       11.99,
		Category:    "Seafood",
		Image:       "https://images.unsplash.com/photo-1559339352-11d035aa65de?w=600&h=600&fit=crop",
	},
	{
		ID:          "9",
		Name:        "Chocolate Cake",
		Description: "Rich and moist chocolate cake with frosting",
		Price:       6.99,
		Category:    "Desserts",
		Image:       "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=600&h=600&fit=crop",
	},
	{
		ID:          "10",
		Name:        "Ice Cream Sundae",
		Description: "Vanilla ice cream with chocolate sauce and toppings",
		Price:       5.99,
		Category:    "Desserts",
		Image:       "https://images.unsplash.com/photo-1563805042-7684c019e1cb?w=600&h=600&fit=crop",
	},
	{
		ID:          "11",
		Name:        "Chicken Wings",
		Description: "Spicy buffalo wings with blue cheese dip",
		Price:       9.99,
		Category:    "Appetizers",
		Image:       "https://images.unsplash.com/photo-1527477396000-e27137b25c24?w=600&h=600&fit=crop",
	},
	{
		ID:          "12",
		Name:        "Nachos",
		Description: "Crispy nachos with cheese, jalapeños, and salsa",
		Price:       7.99,
		Category:    "Appetizers",
		Image:       "https://images.unsplash.com/photo-1513456852971-30c0b8199d4d?w=600&h=600&fit=crop",
	},
}

// Items retourne une copie du catalogue complet
func Items() []models.MenuItem {
	out := make([]models.MenuItem, len(items))
	copy(out, items)
	return out
}

// ByID retourne l'item correspondant, ou nil s'il n'existe pas
func ByID(id string) *models.MenuItem {
	for i := range items {
		if items[i].ID == id {
			item := items[i]
			return &item
		}
	}
	return nil
}

// ByCategory retourne les items d'une catégorie donnée
func ByCategory(category string) []models.MenuItem {
	var out []models.MenuItem
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

// Categories retourne la liste des catégories, dans l'ordre du catalogue
func Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, item := range items {
		if item.Category != "" && !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}
