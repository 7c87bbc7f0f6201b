package model

// CategoryID identifies one of the fixed spending categories.
type CategoryID string

const (
	// CategoryFood covers meals, snacks, and drinks.
	CategoryFood CategoryID = "food"
	// CategoryTransport covers public transit, taxis, and fuel.
	CategoryTransport CategoryID = "transport"
	// CategoryShopping covers general retail purchases.
	CategoryShopping CategoryID = "shopping"
	// CategoryHouse covers rent, utilities, and household expenses.
	CategoryHouse CategoryID = "house"
	// CategoryCulture covers books, courses, and entertainment.
	CategoryCulture CategoryID = "culture"
	// CategoryTravel covers trips and vacations.
	CategoryTravel CategoryID = "travel"
	// CategoryTech covers electronics and digital services.
	CategoryTech CategoryID = "tech"
	// CategoryOther is the reserved fallback when nothing else matches.
	CategoryOther CategoryID = "other"
)

// Category describes a spending classification with its display attributes.
// Icon is a symbolic token resolved by whatever surface renders it.
type Category struct {
	ID    CategoryID
	Name  string
	Icon  string
	Color string
}

// categories is the fixed taxonomy, in display order. It is defined once at
// process start and never mutated.
var categories = []Category{
	{ID: CategoryFood, Name: "餐饮", Icon: "Utensils", Color: "#FF9500"},
	{ID: CategoryTransport, Name: "交通", Icon: "Bus", Color: "#007AFF"},
	{ID: CategoryShopping, Name: "购物", Icon: "ShoppingBag", Color: "#FF2D55"},
	{ID: CategoryHouse, Name: "居住", Icon: "Home", Color: "#5856D6"},
	{ID: CategoryCulture, Name: "文化", Icon: "BookOpen", Color: "#FFCC00"},
	{ID: CategoryTravel, Name: "旅游", Icon: "Palmtree", Color: "#4CD964"},
	{ID: CategoryTech, Name: "数码", Icon: "Smartphone", Color: "#1D1D1F"},
	{ID: CategoryOther, Name: "其他", Icon: "MoreHorizontal", Color: "#8E8E93"},
}

// Categories returns the full taxonomy in display order. Callers receive a
// copy and may reorder it freely.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByID looks up a category by its ID.
func CategoryByID(id CategoryID) (Category, bool) {
	for _, cat := range categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// CategoryByName maps an external display name (e.g. from the semantic
// parser) to a category. The mapping is total: unknown names resolve to the
// fallback category rather than failing.
func CategoryByName(name string) Category {
	for _, cat := range categories {
		if cat.Name == name {
			return cat
		}
	}
	fallback, _ := CategoryByID(CategoryOther)
	return fallback
}

// FallbackCategory returns the reserved catch-all category.
func FallbackCategory() Category {
	fallback, _ := CategoryByID(CategoryOther)
	return fallback
}
