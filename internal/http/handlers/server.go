package handlers

import (
	repo "github.com/rogerio-castellano/inventory-service/internal/repo"
)

var (
	itemRepo    repo.ItemRepository
	metricsRepo repo.MetricsRepository
)

func SetItemRepo(r repo.ItemRepository) {
	itemRepo = r
}

func SetMetricsRepo(r repo.MetricsRepository) {
	metricsRepo = r
}
