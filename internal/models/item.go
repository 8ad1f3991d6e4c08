package models

// Item represents a named stock record in the inventory.
type Item struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	CreatedOn string `json:"createdOn"`
}
