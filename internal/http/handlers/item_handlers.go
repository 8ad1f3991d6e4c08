package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/inventory-service/internal/models"
	repo "github.com/rogerio-castellano/inventory-service/internal/repo"
	"go.uber.org/zap"
)

// GetItemsHandler godoc
// @Summary List all items
// @Tags inventory
// @Produce json
// @Success 200 {array} ItemResponse
// @Failure 500 {string} string "Internal error"
// @Router /inventory [get]
func GetItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := itemRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch items", http.StatusInternalServerError)
		return
	}
	respond(w, r, http.StatusOK, toItemResponses(items))
}

// GetItemByNameHandler godoc
// @Summary Get item by name
// @Description Name matching is case-insensitive
// @Tags inventory
// @Produce json
// @Param name path string true "Item name"
// @Success 200 {object} ItemResponse
// @Failure 404 {string} string "Not found"
// @Router /inventory/{name} [get]
// @Router /inventory/name/{name} [get]
func GetItemByNameHandler(w http.ResponseWriter, r *http.Request) {
	item, err := itemRepo.GetByName(chi.URLParam(r, "name"))
	if err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch item", http.StatusInternalServerError)
		return
	}
	respond(w, r, http.StatusOK, toItemResponse(item))
}

// CreateItemsHandler godoc
// @Summary Add items
// @Description Adds every item or none. createdOn is set to the current date.
// @Tags inventory
// @Accept json
// @Produce json
// @Param items body []ItemRequest true "Items to add"
// @Success 201 {array} ItemResponse
// @Failure 400 {object} []ItemValidationError
// @Failure 409 {string} string "Item already exists"
// @Router /inventory [post]
func CreateItemsHandler(w http.ResponseWriter, r *http.Request) {
	var req []ItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := validateItems(req); len(validationErrors) > 0 {
		respond(w, r, http.StatusBadRequest, validationErrors)
		return
	}

	items := make([]models.Item, len(req))
	for i, it := range req {
		items[i] = it.toModel()
	}

	added, err := itemRepo.Add(items)
	if err != nil {
		if errors.Is(err, repo.ErrItemConflict) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, "could not add items", http.StatusInternalServerError)
		return
	}

	respond(w, r, http.StatusCreated, toItemResponses(added), http.Header{"Location": {"/inventory"}})
}

// UpsertItemHandler godoc
// @Summary Update or create an item
// @Description Updates quantity and createdOn of an existing item, or creates it under the path name
// @Tags inventory
// @Accept json
// @Produce json
// @Param name path string true "Item name"
// @Param item body ItemRequest true "Item values"
// @Success 200 {object} ItemResponse
// @Success 201 {object} ItemResponse
// @Failure 400 {string} string "Invalid input"
// @Router /inventory/{name} [put]
func UpsertItemHandler(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	var req ItemRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	item, created, err := itemRepo.Upsert(name, req.toModel())
	if err != nil {
		http.Error(w, "could not update item", http.StatusInternalServerError)
		return
	}

	if created {
		zap.L().Debug("item created by upsert", zap.String("name", item.Name))
		respond(w, r, http.StatusCreated, toItemResponse(item),
			http.Header{"Location": {"/inventory/" + url.PathEscape(item.Name)}})
		return
	}
	respond(w, r, http.StatusOK, toItemResponse(item))
}

// DeleteItemHandler godoc
// @Summary Delete an item
// @Tags inventory
// @Param name path string true "Item name"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Router /inventory/{name} [delete]
func DeleteItemHandler(w http.ResponseWriter, r *http.Request) {
	if err := itemRepo.Delete(chi.URLParam(r, "name")); err != nil {
		if errors.Is(err, repo.ErrItemNotFound) {
			http.Error(w, "item not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete item", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExtremalItemHandler returns a handler serving the first item in the
// inventory ordered by field in direction dir.
//
// @Summary Extremal item queries
// @Tags inventory
// @Produce json
// @Success 200 {object} ItemResponse
// @Failure 404 {string} string "Inventory is empty"
// @Router /inventory/highest-quantity [get]
// @Router /inventory/lowest-quantity [get]
// @Router /inventory/oldest-item [get]
// @Router /inventory/newest-item [get]
func ExtremalItemHandler(field repo.SortField, dir repo.Direction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := itemRepo.Extremal(field, dir)
		if err != nil {
			if errors.Is(err, repo.ErrItemNotFound) {
				http.Error(w, "item not found", http.StatusNotFound)
				return
			}
			http.Error(w, "could not fetch item", http.StatusInternalServerError)
			return
		}
		respond(w, r, http.StatusOK, toItemResponse(item))
	}
}

// SearchItemsHandler godoc
// @Summary Search items by name
// @Description Case-sensitive substring match. No match yields an empty list.
// @Tags inventory
// @Produce json
// @Param keyword path string true "Substring of the item name"
// @Success 200 {array} ItemResponse
// @Router /inventory/search/{keyword} [get]
func SearchItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := itemRepo.Search(chi.URLParam(r, "keyword"))
	if err != nil {
		http.Error(w, "could not search items", http.StatusInternalServerError)
		return
	}
	respond(w, r, http.StatusOK, toItemResponses(items))
}

// SortItemsHandler godoc
// @Summary Sort items
// @Description Ascending by name, quantity or createdOn. Other attributes return the inventory unsorted.
// @Tags inventory
// @Produce json
// @Param attribute path string true "name, quantity or createdOn"
// @Success 200 {array} ItemResponse
// @Router /inventory/sort/{attribute} [get]
func SortItemsHandler(w http.ResponseWriter, r *http.Request) {
	items, err := itemRepo.SortBy(chi.URLParam(r, "attribute"))
	if err != nil {
		http.Error(w, "could not sort items", http.StatusInternalServerError)
		return
	}
	respond(w, r, http.StatusOK, toItemResponses(items))
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResult
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, r, http.StatusOK, HealthResult{Status: "ok"})
}
