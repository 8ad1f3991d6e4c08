package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"time"

	handler "github.com/rogerio-castellano/inventory-service/internal/http/handlers"
	"github.com/rogerio-castellano/inventory-service/internal/http/router"
	"github.com/rogerio-castellano/inventory-service/internal/repo"
)

const today = "2024-03-05"

var itemRepo *repo.InMemoryItemRepository

func fixedClock() time.Time {
	return time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC)
}

func init() {
	resetInventory()
}

// resetInventory installs a fresh repository holding the seed rows.
func resetInventory() {
	itemRepo = repo.NewInMemoryItemRepository(repo.WithClock(fixedClock), repo.WithItems(repo.SeedItems()...))
	handler.SetItemRepo(itemRepo)
	handler.SetMetricsRepo(repo.NewInMemoryMetricsRepository(itemRepo))
}

func clearInventory() {
	itemRepo.Clear()
}

func newRouter() http.Handler {
	return router.NewRouter(router.Options{})
}

func doRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createItems(r http.Handler, items ...handler.ItemRequest) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodPost, "/inventory", items)
}

func decodeItem(w *httptest.ResponseRecorder) (handler.ItemResponse, error) {
	var resp handler.ItemResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	return resp, err
}

func decodeItems(w *httptest.ResponseRecorder) ([]handler.ItemResponse, error) {
	var resp []handler.ItemResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	return resp, err
}

func itemNames(items []handler.ItemResponse) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
