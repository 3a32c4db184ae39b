package domain

// Product is immutable reference data. The catalog is seeded once at
// startup and the store only ever reads or copies entries.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl"`
	Rating      float64 `json:"rating"` // 0-5
	ReviewCount int     `json:"reviewCount"`
	InStock     bool    `json:"inStock"`
	Category    string  `json:"category"`
}
