package models

// A recipe from TheMealDB, normalized for the client.
type Recipe struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Category     string       `json:"category"`
	Area         string       `json:"area"`
	Instructions string       `json:"instructions,omitempty"`
	Image        string       `json:"image,omitempty"`
	Ingredients  []Ingredient `json:"ingredients,omitempty"`
}

type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// A packaged product from Open Food Facts. Nutrition is per 100g.
type Product struct {
	Barcode   string `json:"barcode"`
	Name      string `json:"name"`
	Brand     string `json:"brand,omitempty"`
	Image     string `json:"image,omitempty"`
	Serving   string `json:"serving,omitempty"`
	Nutrition Totals `json:"nutrition"`
}
