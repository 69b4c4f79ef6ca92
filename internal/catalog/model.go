package catalog

// Product is one catalog entry. Name doubles as the store key and matches
// the detector's tag names.
type Product struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
}
