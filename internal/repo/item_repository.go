package repo

import "github.com/rogerio-castellano/inventory-service/internal/models"

// ItemRepository defines the interface for inventory item operations.
type ItemRepository interface {
	GetAll() ([]models.Item, error)
	GetByName(name string) (models.Item, error)
	Add(items []models.Item) ([]models.Item, error)
	Upsert(name string, item models.Item) (models.Item, bool, error)
	Delete(name string) error
	Extremal(field SortField, dir Direction) (models.Item, error)
	Search(substring string) ([]models.Item, error)
	SortBy(attribute string) ([]models.Item, error)
}
