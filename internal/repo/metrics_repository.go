package repo

type ItemSummary struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Metrics struct {
	TotalItems      int          `json:"total_items"`
	TotalQuantity   int          `json:"total_quantity"`
	OutOfStockCount int          `json:"out_of_stock_count"`
	HighestQuantity *ItemSummary `json:"highest_quantity_item,omitempty"`
	NewestItem      *ItemSummary `json:"newest_item,omitempty"`
}

type MetricsRepository interface {
	GetDashboardMetrics() (Metrics, error)
}
