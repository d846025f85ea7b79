package domain

// TicketStats is a derived aggregate over the current ticket collection.
// It is recomputed on demand and never persisted.
type TicketStats struct {
	Total         int                    `json:"total"`
	ByStatus      map[TicketStatus]int   `json:"by_status"`
	ByPriority    map[TicketPriority]int `json:"by_priority"`
	ByProductType map[ProductType]int    `json:"by_product_type"`
	Overdue       int                    `json:"overdue"`
	DueToday      int                    `json:"due_today"`
}
