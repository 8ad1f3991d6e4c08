package handlers

import "github.com/rogerio-castellano/inventory-service/internal/models"

type ItemRequest struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	CreatedOn string `json:"createdOn,omitempty"`
}

type ItemResponse struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	CreatedOn string `json:"createdOn"`
}

type ImportItemsResult struct {
	ImportedItemsCount int                   `json:"imported"`
	Errors             []ItemValidationError `json:"errors"`
}

type HealthResult struct {
	Status string `json:"status"`
}

func (req ItemRequest) toModel() models.Item {
	return models.Item{
		Name:      req.Name,
		Quantity:  req.Quantity,
		CreatedOn: req.CreatedOn,
	}
}

func toItemResponse(it models.Item) ItemResponse {
	return ItemResponse{
		Name:      it.Name,
		Quantity:  it.Quantity,
		CreatedOn: it.CreatedOn,
	}
}

func toItemResponses(items []models.Item) []ItemResponse {
	resp := make([]ItemResponse, len(items))
	for i, it := range items {
		resp[i] = toItemResponse(it)
	}
	return resp
}
