package list_services

import (
	"context"

	"github.com/provora/SchedulingService/internal/service/catalog/models"
)

type CatalogService interface {
	GetByOwner(ctx context.Context, ownerID int64) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
