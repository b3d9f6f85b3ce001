package models

// Service is one entry of the clinic's service catalog, as served by the
// backend at /servicios/all.
type Service struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}
