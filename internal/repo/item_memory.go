package repo

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/rogerio-castellano/inventory-service/internal/models"
)

// DateLayout is the format of createdOn values generated by the repository.
const DateLayout = "2006-01-02"

var _ ItemRepository = (*InMemoryItemRepository)(nil)

// InMemoryItemRepository is an in-memory implementation of ItemRepository.
// Names are matched case-insensitively for every lookup and mutation.
type InMemoryItemRepository struct {
	mu    sync.RWMutex
	items []models.Item
	now   func() time.Time
}

// Option configures an InMemoryItemRepository.
type Option func(*InMemoryItemRepository)

// WithClock overrides the clock used to stamp createdOn.
func WithClock(now func() time.Time) Option {
	return func(r *InMemoryItemRepository) {
		r.now = now
	}
}

// WithItems preloads the repository with items, in order.
func WithItems(items ...models.Item) Option {
	return func(r *InMemoryItemRepository) {
		r.items = append(r.items, items...)
	}
}

// NewInMemoryItemRepository creates a new instance of InMemoryItemRepository.
func NewInMemoryItemRepository(opts ...Option) *InMemoryItemRepository {
	r := &InMemoryItemRepository{
		items: []models.Item{},
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SeedItems returns the rows a fresh service starts with.
func SeedItems() []models.Item {
	return []models.Item{
		{Name: "Apples", Quantity: 3, CreatedOn: "2020-01-01"},
		{Name: "Oranges", Quantity: 7, CreatedOn: "2020-02-01"},
		{Name: "Pomegranates", Quantity: 55, CreatedOn: "2020-01-10"},
	}
}

func sameName(a, b string) bool {
	return strings.EqualFold(a, b)
}

// indexOf must be called with the lock held.
func (r *InMemoryItemRepository) indexOf(name string) int {
	return slices.IndexFunc(r.items, func(it models.Item) bool {
		return sameName(it.Name, name)
	})
}

func (r *InMemoryItemRepository) today() string {
	return r.now().Format(DateLayout)
}

// GetAll retrieves all items in insertion order.
func (r *InMemoryItemRepository) GetAll() ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.items), nil
}

// GetByName retrieves an item by its name.
func (r *InMemoryItemRepository) GetByName(name string) (models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i := r.indexOf(name); i >= 0 {
		return r.items[i], nil
	}
	return models.Item{}, ErrItemNotFound
}

// Add appends items stamped with today's date. Either every item is added or,
// if any name is taken (by the store or by an earlier item in the batch),
// none is.
func (r *InMemoryItemRepository) Add(items []models.Item) ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, it := range items {
		if r.indexOf(it.Name) >= 0 {
			return nil, fmt.Errorf("%w: %s", ErrItemConflict, it.Name)
		}
		for _, prev := range items[:i] {
			if sameName(prev.Name, it.Name) {
				return nil, fmt.Errorf("%w: %s", ErrItemConflict, it.Name)
			}
		}
	}

	created := r.today()
	added := make([]models.Item, len(items))
	for i, it := range items {
		it.CreatedOn = created
		added[i] = it
	}
	r.items = append(r.items, added...)
	return added, nil
}

// Upsert updates quantity and createdOn of the named item, or appends item
// under name when it does not exist. The boolean reports whether the item
// was created.
func (r *InMemoryItemRepository) Upsert(name string, item models.Item) (models.Item, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexOf(name); i >= 0 {
		r.items[i].Quantity = item.Quantity
		r.items[i].CreatedOn = item.CreatedOn
		return r.items[i], false, nil
	}

	item.Name = name
	if item.CreatedOn == "" {
		item.CreatedOn = r.today()
	}
	r.items = append(r.items, item)
	return item, true, nil
}

// Delete removes an item by its name.
func (r *InMemoryItemRepository) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(name)
	if i < 0 {
		return ErrItemNotFound
	}
	r.items = slices.Delete(r.items, i, i+1)
	return nil
}

// Extremal returns the first item when the inventory is ordered by field in
// the given direction.
func (r *InMemoryItemRepository) Extremal(field SortField, dir Direction) (models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.items) == 0 {
		return models.Item{}, ErrItemNotFound
	}
	return ordered(r.items, field, dir)[0], nil
}

// Search returns the items whose name contains substring. The match is
// case-sensitive.
func (r *InMemoryItemRepository) Search(substring string) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := []models.Item{}
	for _, it := range r.items {
		if strings.Contains(it.Name, substring) {
			found = append(found, it)
		}
	}
	return found, nil
}

// SortBy returns the inventory in ascending order of attribute. Unknown
// attributes yield insertion order.
func (r *InMemoryItemRepository) SortBy(attribute string) ([]models.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	field, _ := ParseSortField(attribute)
	return ordered(r.items, field, Ascending), nil
}

func (r *InMemoryItemRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = []models.Item{}
}
