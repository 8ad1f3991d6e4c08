package handlers

import (
	"fmt"
	"strings"
)

type ItemValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateItems(items []ItemRequest) []ItemValidationError {
	errs := []ItemValidationError{}
	if len(items) == 0 {
		errs = append(errs, ItemValidationError{Field: "items", Description: "At least one item is required"})
	}
	for i, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			errs = append(errs, ItemValidationError{Field: fmt.Sprintf("items[%d].name", i), Description: "Name is required"})
		}
	}
	return errs
}
