package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/inventory-service/internal/models"
	repo "github.com/rogerio-castellano/inventory-service/internal/repo"
)

const maxImportBytes = 10 << 20

type csvRow struct {
	Name      string
	Quantity  string
	CreatedOn string
}

func parseCSV(file io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index["name"]; !ok {
		return nil, errors.New("CSV header must contain name")
	}
	if _, ok := index["quantity"]; !ok {
		return nil, errors.New("CSV header must contain quantity")
	}

	field := func(record []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		rows = append(rows, csvRow{
			Name:      field(record, "name"),
			Quantity:  field(record, "quantity"),
			CreatedOn: field(record, "createdon"),
		})
	}
	return rows, nil
}

func (row csvRow) toModel() (models.Item, error) {
	if row.Name == "" {
		return models.Item{}, errors.New("missing name")
	}
	qty, err := strconv.Atoi(row.Quantity)
	if err != nil {
		return models.Item{}, fmt.Errorf("invalid quantity %q", row.Quantity)
	}
	return models.Item{Name: row.Name, Quantity: qty, CreatedOn: row.CreatedOn}, nil
}

// ImportItemsHandler godoc
// @Summary Import items via CSV
// @Description Header row must contain name and quantity; createdOn is optional.
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportItemsResult
// @Failure 400 {string} string "Invalid file"
// @Router /inventory/import [post]
func ImportItemsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var imported int
	errorsList := []ItemValidationError{}
	rowError := func(rowNum int, format string, args ...any) {
		errorsList = append(errorsList, ItemValidationError{
			Field:       fmt.Sprintf("row %d", rowNum),
			Description: fmt.Sprintf(format, args...),
		})
	}

	for i, rec := range records {
		rowNum := i + 2 // header is row 1

		item, err := rec.toModel()
		if err != nil {
			rowError(rowNum, "%v", err)
			continue
		}

		if mode == "update" {
			// a blank createdOn column leaves an existing date alone
			if item.CreatedOn == "" {
				if existing, err := itemRepo.GetByName(item.Name); err == nil {
					item.CreatedOn = existing.CreatedOn
				}
			}
			if _, _, err := itemRepo.Upsert(item.Name, item); err != nil {
				rowError(rowNum, "failed to update '%s'", item.Name)
				continue
			}
			imported++
			continue
		}

		if _, err := itemRepo.Add([]models.Item{item}); err != nil {
			if errors.Is(err, repo.ErrItemConflict) {
				rowError(rowNum, "item '%s' already exists", item.Name)
				continue
			}
			rowError(rowNum, "%v", err)
			continue
		}
		imported++
	}

	respond(w, r, http.StatusOK, ImportItemsResult{
		ImportedItemsCount: imported,
		Errors:             errorsList,
	})
}
