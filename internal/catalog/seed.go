package catalog

import "github.com/ovenfresh/storefront/internal/models"

// defaultCatalog returns the built-in menu used when no catalog file is
// configured. Kept small but covering every category and sort field.
func defaultCatalog() *models.Catalog {
	return &models.Catalog{
		Items: []models.MenuItem{
			{ID: 1, Name: "Margherita Pizza", Category: "pizza", Price: 14.99, Description: "Wood-fired pizza with tomato, mozzarella and basil", Image: "margherita.jpg", Rating: 4.7, Popular: true, PrepTime: "15-20 min"},
			{ID: 2, Name: "Pepperoni Pizza", Category: "pizza", Price: 16.99, Description: "Classic pepperoni pizza with extra cheese", Image: "pepperoni.jpg", Rating: 4.8, Popular: true, PrepTime: "15-20 min"},
			{ID: 3, Name: "Veggie Pizza", Category: "pizza", Price: 15.49, Description: "Peppers, mushrooms, olives and red onion", Image: "veggie-pizza.jpg", Rating: 4.3, PrepTime: "15-20 min"},
			{ID: 4, Name: "Classic Burger", Category: "burger", Price: 13.99, Description: "Beef patty, cheddar, lettuce and house sauce", Image: "classic-burger.jpg", Rating: 4.6, Popular: true, PrepTime: "10-15 min"},
			{ID: 5, Name: "Smoky BBQ Burger", Category: "burger", Price: 15.49, Description: "Double patty with smoked bacon and BBQ glaze", Image: "bbq-burger.jpg", Rating: 4.5, PrepTime: "10-15 min"},
			{ID: 6, Name: "Caesar Salad", Category: "salad", Price: 8.99, Description: "Romaine, parmesan, croutons and caesar dressing", Image: "caesar.jpg", Rating: 4.2, PrepTime: "5-10 min"},
			{ID: 7, Name: "Greek Salad", Category: "salad", Price: 9.49, Description: "Feta, olives, cucumber and tomato", Image: "greek.jpg", Rating: 4.4, PrepTime: "5-10 min"},
			{ID: 8, Name: "Chocolate Waffle", Category: "dessert", Price: 11.99, Description: "Belgian waffle with chocolate sauce and cream", Image: "choco-waffle.jpg", Rating: 4.9, Popular: true, PrepTime: "10-15 min"},
			{ID: 9, Name: "Tiramisu", Category: "dessert", Price: 7.99, Description: "Espresso-soaked ladyfingers with mascarpone", Image: "tiramisu.jpg", Rating: 4.8, PrepTime: "5 min"},
			{ID: 10, Name: "Fresh Lemonade", Category: "drink", Price: 4.49, Description: "Hand-squeezed lemonade with mint", Image: "lemonade.jpg", Rating: 4.1, PrepTime: "5 min"},
			{ID: 11, Name: "Iced Latte", Category: "drink", Price: 5.29, Description: "Double shot espresso over milk and ice", Image: "iced-latte.jpg", Rating: 4.5, Popular: true, PrepTime: "5 min"},
			{ID: 12, Name: "Garden Salad", Category: "salad", Price: 7.99, Description: "Mixed leaves with seasonal vegetables", Image: "garden.jpg", Rating: 4.0, PrepTime: "5-10 min"},
		},
		Categories: []models.Category{
			{ID: "pizza", Name: "Pizza", Icon: "pizza", Color: "red"},
			{ID: "burger", Name: "Burgers", Icon: "burger", Color: "amber"},
			{ID: "salad", Name: "Salads", Icon: "salad", Color: "green"},
			{ID: "dessert", Name: "Desserts", Icon: "cake", Color: "pink"},
			{ID: "drink", Name: "Drinks", Icon: "cup", Color: "blue"},
		},
	}
}
