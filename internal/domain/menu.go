package domain

// MenuItem is one entry of the fixed juice catalog.
type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
}

var menuItems = []MenuItem{
	{ID: "juice-001", Name: "Fresh Orange Juice", Description: "Freshly squeezed oranges bursting with vitamin C", Price: 5.99, ImageURL: "/assets/orange-juice.jpg", Category: "Citrus"},
	{ID: "juice-002", Name: "Green Detox Smoothie", Description: "Spinach, kale, apple, and cucumber blend", Price: 7.49, ImageURL: "/assets/green-smoothie.jpg", Category: "Green"},
	{ID: "juice-003", Name: "Berry Blast", Description: "Mixed berries with a hint of honey", Price: 6.99, ImageURL: "/assets/berry-blast.jpg", Category: "Berry"},
	{ID: "juice-004", Name: "Tropical Paradise", Description: "Mango, pineapple, and coconut water", Price: 7.99, ImageURL: "/assets/tropical-paradise.jpg", Category: "Tropical"},
	{ID: "juice-005", Name: "Carrot Ginger Boost", Description: "Fresh carrots with a kick of ginger", Price: 6.49, ImageURL: "/assets/carrot-ginger.jpg", Category: "Vegetable"},
	{ID: "juice-006", Name: "Watermelon Mint Cooler", Description: "Refreshing watermelon with fresh mint leaves", Price: 5.49, ImageURL: "/assets/watermelon-mint.jpg", Category: "Refresher"},
	{ID: "juice-007", Name: "Lemon Ginger Zinger", Description: "Tangy lemon with spicy ginger and turmeric", Price: 6.99, ImageURL: "/assets/lemon-ginger.jpg", Category: "Citrus"},
	{ID: "juice-008", Name: "Beetroot Power", Description: "Beetroot, apple, and celery energy blend", Price: 7.49, ImageURL: "/assets/beetroot-power.jpg", Category: "Vegetable"},
	{ID: "juice-009", Name: "Strawberry Banana Smoothie", Description: "Creamy blend of strawberries and banana", Price: 6.49, ImageURL: "/assets/strawberry-banana.jpg", Category: "Berry"},
	{ID: "juice-010", Name: "Pineapple Turmeric Tonic", Description: "Anti-inflammatory pineapple and turmeric mix", Price: 7.99, ImageURL: "/assets/pineapple-turmeric.jpg", Category: "Tropical"},
}

// Menu returns the fixed catalog served to the ordering page.
func Menu() []MenuItem {
	out := make([]MenuItem, len(menuItems))
	copy(out, menuItems)
	return out
}
