package handlers_test_suite

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/inventory-service/internal/http/handlers"
)

func TestGetItemsHandler(t *testing.T) {
	resetInventory()
	r := newRouter()

	w := createItems(r, handler.ItemRequest{Name: "Kiwi", Quantity: 5})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/inventory", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	items, err := decodeItems(w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	want := []string{"Apples", "Oranges", "Pomegranates", "Kiwi"}
	if !reflect.DeepEqual(itemNames(items), want) {
		t.Fatalf("expected %v, got %v", want, itemNames(items))
	}
	if items[0].Quantity != 3 || items[0].CreatedOn != "2020-01-01" {
		t.Errorf("seed row changed: %+v", items[0])
	}
	if items[3].Quantity != 5 || items[3].CreatedOn != today {
		t.Errorf("unexpected added row: %+v", items[3])
	}
}

func TestGetItemByNameHandler(t *testing.T) {
	resetInventory()
	r := newRouter()

	for _, path := range []string{"/inventory/Apples", "/inventory/apples", "/inventory/name/APPLES"} {
		w := doRequest(r, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: expected 200 OK, got %d", path, w.Code)
		}
		item, err := decodeItem(w)
		if err != nil {
			t.Fatalf("error decoding response: %v", err)
		}
		if item.Name != "Apples" || item.Quantity != 3 {
			t.Errorf("%s: unexpected item %+v", path, item)
		}
	}

	w := doRequest(r, http.MethodGet, "/inventory/Bananas", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}

func TestCreateItemsHandler_Valid(t *testing.T) {
	resetInventory()
	r := newRouter()

	w := createItems(r,
		handler.ItemRequest{Name: "Kiwi", Quantity: 5},
		handler.ItemRequest{Name: "Mango", Quantity: 2, CreatedOn: "1999-01-01"},
	)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/inventory" {
		t.Errorf("expected Location /inventory, got %q", loc)
	}

	items, err := decodeItems(w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, it := range items {
		if it.CreatedOn != today {
			t.Errorf("expected createdOn %s for %s, got %s", today, it.Name, it.CreatedOn)
		}
	}
}

func TestCreateItemsHandler_Conflict(t *testing.T) {
	resetInventory()
	r := newRouter()

	w := createItems(r,
		handler.ItemRequest{Name: "Kiwi", Quantity: 5},
		handler.ItemRequest{Name: "Apples", Quantity: 1},
	)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}

	items, _ := itemRepo.GetAll()
	if len(items) != 3 {
		t.Errorf("expected inventory untouched with 3 items, got %d", len(items))
	}
}

func TestCreateItemsHandler_Invalid(t *testing.T) {
	resetInventory()
	r := newRouter()

	tests := []struct {
		name       string
		body       string
		expectCode int
	}{
		{"Malformed JSON", `[{"name": "Kiwi" "quantity": 1}]`, http.StatusBadRequest},
		{"Single object instead of list", `{"name": "Kiwi", "quantity": 1}`, http.StatusBadRequest},
		{"Two JSON values", `[{"name": "Kiwi"}] [{"name": "Mango"}]`, http.StatusBadRequest},
		{"Empty list", `[]`, http.StatusBadRequest},
		{"Missing name", `[{"quantity": 1}]`, http.StatusBadRequest},
		{"Blank name", `[{"name": "  ", "quantity": 1}]`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/inventory", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.expectCode {
				t.Errorf("expected status %d, got %d", tt.expectCode, w.Code)
			}
		})
	}

	items, _ := itemRepo.GetAll()
	if len(items) != 3 {
		t.Errorf("expected 3 items after rejected requests, got %d", len(items))
	}
}

func TestCreateItemsHandler_ValidationErrors(t *testing.T) {
	resetInventory()
	r := newRouter()

	w := createItems(r, handler.ItemRequest{Name: "Kiwi"}, handler.ItemRequest{Name: ""})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 Bad Request, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "items[1].name") {
		t.Errorf("expected error for items[1].name, got %s", w.Body.String())
	}
}

func TestUpsertItemHandler_Update(t *testing.T) {
	resetInventory()
	r := newRouter()

	w := doRequest(r, http.MethodPut, "/inventory/Apples", handler.ItemRequest{Name: "Renamed", Quantity: 99, CreatedOn: "2021-01-01"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	item, err := decodeItem(w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	want := handler.ItemResponse{Name: "Apples", Quantity: 99, CreatedOn: "2021-01-01"}
	if item != want {
		t.Errorf("expected %+v, got %+v", want, item)
	}

	stored, err := itemRepo.GetByName("Apples")
	if err != nil || stored.Quantity != 99 {
		t.Errorf("expected stored quantity 99, got %+v (%v)", stored, err)
	}
}

func TestUpsertItemHandler_Create(t *testing.T) {
	resetInventory()
	r := newRouter()

	w := doRequest(r, http.MethodPut, "/inventory/Mango", handler.ItemRequest{Quantity: 4, CreatedOn: "2023-06-01"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/inventory/Mango" {
		t.Errorf("expected Location /inventory/Mango, got %q", loc)
	}

	item, _ := decodeItem(w)
	if item.Name != "Mango" || item.Quantity != 4 {
		t.Errorf("unexpected item %+v", item)
	}

	if _, err := itemRepo.GetByName("Mango"); err != nil {
		t.Errorf("expected Mango to be stored: %v", err)
	}
}

func TestUpsertItemHandler_MalformedJSON(t *testing.T) {
	resetInventory()
	r := newRouter()

	req := httptest.NewRequest(http.MethodPut, "/inventory/Apples", bytes.NewBufferString(`{quantity: 1`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 Bad Request, got %d", w.Code)
	}
	if w.Body.String() != "invalid input\n" {
		t.Errorf("unexpected body %q", w.Body.String())
	}
}

func TestDeleteItemHandler(t *testing.T) {
	resetInventory()
	r := newRouter()

	w := doRequest(r, http.MethodDelete, "/inventory/Oranges", nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	w = doRequest(r, http.MethodGet, "/inventory/Oranges", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}

	w = doRequest(r, http.MethodDelete, "/inventory/NoSuch", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}

	items, _ := itemRepo.GetAll()
	if len(items) != 2 {
		t.Errorf("expected 2 items, got %d", len(items))
	}
}

func TestExtremalHandlers(t *testing.T) {
	resetInventory()
	r := newRouter()

	tests := []struct {
		path string
		want string
	}{
		{"/inventory/highest-quantity", "Pomegranates"},
		{"/inventory/lowest-quantity", "Apples"},
		{"/inventory/oldest-item", "Apples"},
		{"/inventory/newest-item", "Oranges"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, tt.path, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", w.Code)
			}
			item, err := decodeItem(w)
			if err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if item.Name != tt.want {
				t.Errorf("expected %s, got %s", tt.want, item.Name)
			}
		})
	}
}

func TestExtremalHandlers_EmptyInventory(t *testing.T) {
	resetInventory()
	clearInventory()
	r := newRouter()

	for _, path := range []string{"/inventory/highest-quantity", "/inventory/lowest-quantity", "/inventory/oldest-item", "/inventory/newest-item"} {
		w := doRequest(r, http.MethodGet, path, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected 404 Not Found, got %d", path, w.Code)
		}
	}
}

func TestSearchItemsHandler(t *testing.T) {
	resetInventory()
	r := newRouter()

	w := doRequest(r, http.MethodGet, "/inventory/search/an", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	items, _ := decodeItems(w)
	want := []string{"Oranges", "Pomegranates"}
	if !reflect.DeepEqual(itemNames(items), want) {
		t.Errorf("expected %v, got %v", want, itemNames(items))
	}

	w = doRequest(r, http.MethodGet, "/inventory/search/xyz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "[]" {
		t.Errorf("expected empty JSON list, got %s", body)
	}
}

func TestSortItemsHandler(t *testing.T) {
	resetInventory()
	r := newRouter()

	tests := []struct {
		attribute string
		want      []string
	}{
		{"name", []string{"Apples", "Oranges", "Pomegranates"}},
		{"quantity", []string{"Apples", "Oranges", "Pomegranates"}},
		{"createdOn", []string{"Apples", "Pomegranates", "Oranges"}},
		{"unknown", []string{"Apples", "Oranges", "Pomegranates"}},
	}

	for _, tt := range tests {
		t.Run(tt.attribute, func(t *testing.T) {
			w := doRequest(r, http.MethodGet, "/inventory/sort/"+tt.attribute, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200 OK, got %d", w.Code)
			}
			items, err := decodeItems(w)
			if err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			if !reflect.DeepEqual(itemNames(items), tt.want) {
				t.Errorf("expected %v, got %v", tt.want, itemNames(items))
			}
		})
	}
}

func TestHealthHandler(t *testing.T) {
	r := newRouter()

	w := doRequest(r, http.MethodGet, "/healthz", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Error("expected X-Request-ID header")
	}
}
