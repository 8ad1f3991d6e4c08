package repo

type InMemoryMetricsRepository struct {
	itemRepo ItemRepository
}

func NewInMemoryMetricsRepository(itemRepo ItemRepository) *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{itemRepo: itemRepo}
}

// GetDashboardMetrics implements MetricsRepository. All figures come from a
// single snapshot of the inventory.
func (m *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	var out Metrics

	items, err := m.itemRepo.GetAll()
	if err != nil {
		return out, err
	}
	out.TotalItems = len(items)
	if len(items) == 0 {
		return out, nil
	}

	for _, it := range items {
		out.TotalQuantity += it.Quantity
		if it.Quantity <= 0 {
			out.OutOfStockCount++
		}
	}

	highest := ordered(items, FieldQuantity, Descending)[0]
	out.HighestQuantity = &ItemSummary{Name: highest.Name, Quantity: highest.Quantity}

	newest := ordered(items, FieldCreatedOn, Descending)[0]
	out.NewestItem = &ItemSummary{Name: newest.Name, Quantity: newest.Quantity}

	return out, nil
}
