package model

// Category is a selectable tag classifying a transaction or savings goal.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var incomeCategories = []Category{
	{ID: "salary", Name: "💼 Salario"},
	{ID: "freelance", Name: "💻 Freelance"},
	{ID: "other-income", Name: "💰 Otros ingresos"},
}

var expenseCategories = []Category{
	{ID: "housing", Name: "🏠 Vivienda"},
	{ID: "transport", Name: "🚗 Transporte"},
	{ID: "food", Name: "🍕 Alimentación"},
	{ID: "entertainment", Name: "🎬 Entretenimiento"},
	{ID: "health", Name: "💊 Salud"},
	{ID: "hobbies", Name: "🎮 Hobbies"},
	{ID: "other", Name: "📦 Otros"},
}

var goalCategories = []Category{
	{ID: "travel", Name: "✈️ Viajes"},
	{ID: "emergency", Name: "🚨 Emergencia"},
	{ID: "home", Name: "🏠 Hogar"},
	{ID: "education", Name: "📚 Educación"},
	{ID: "health", Name: "🏥 Salud"},
	{ID: "general", Name: "💰 General"},
}

// CategoriesForType returns the selectable categories for a transaction type.
// Income and expense carry distinct lists.
func CategoriesForType(txType string) []Category {
	if txType == TypeIncome {
		return incomeCategories
	}
	return expenseCategories
}

// GoalCategories returns the selectable savings goal categories.
func GoalCategories() []Category {
	return goalCategories
}

// ValidCategory reports whether the category id belongs to the list of the
// given transaction type.
func ValidCategory(txType, categoryID string) bool {
	for _, c := range CategoriesForType(txType) {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}

// ValidGoalCategory reports whether the id is a known goal category.
func ValidGoalCategory(categoryID string) bool {
	for _, c := range goalCategories {
		if c.ID == categoryID {
			return true
		}
	}
	return false
}

// CategoryName resolves a category id to its display name, falling back to
// the catch-all "Otros" label like the rendering layer always did.
func CategoryName(txType, categoryID string) string {
	for _, c := range CategoriesForType(txType) {
		if c.ID == categoryID {
			return c.Name
		}
	}
	return "📦 Otros"
}
