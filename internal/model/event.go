package model

// Event represents a row in the `events` table. Events are created by an
// admin or chairman and are immutable afterwards; there are no update or
// delete endpoints.
//
// Datetime and Category are stored as free-form strings. The source system
// never parsed or constrained them and clients rely on getting back exactly
// what they submitted, so no validation is applied here.
type Event struct {
	ID          uint64 `json:"id"`
	Title       string `json:"title"`
	Datetime    string `json:"datetime"`
	Category    string `json:"category"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}
