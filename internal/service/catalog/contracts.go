package catalog

import (
	"context"

	"github.com/provora/SchedulingService/internal/domain"
)

// ServiceRepository интерфейс репозитория определений услуг
type ServiceRepository interface {
	Create(ctx context.Context, svc *domain.ServiceDefinition) (*domain.ServiceDefinition, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceDefinition, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]*domain.ServiceDefinition, error)
	Update(ctx context.Context, svc *domain.ServiceDefinition) (*domain.ServiceDefinition, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
