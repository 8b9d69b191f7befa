package get_provider_bookings

import (
	"net/url"
	"time"

	"github.com/provora/SchedulingService/internal/domain"
	"github.com/provora/SchedulingService/internal/service/bookings/models"
)

// ToServiceRequest собирает запрос сервиса из query параметров
func ToServiceRequest(requesterID, providerID int64, query url.Values) (*models.GetProviderBookingsRequest, error) {
	req := &models.GetProviderBookingsRequest{
		RequesterID:      requesterID,
		ProviderID:       providerID,
		IncludeCancelled: query.Get("includeCancelled") == "true",
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if dateFrom := query.Get("dateFrom"); dateFrom != "" {
		parsed, err := time.Parse(domain.DateFormat, dateFrom)
		if err != nil {
			return nil, err
		}
		req.DateFrom = &parsed
	}

	if dateTo := query.Get("dateTo"); dateTo != "" {
		parsed, err := time.Parse(domain.DateFormat, dateTo)
		if err != nil {
			return nil, err
		}
		req.DateTo = &parsed
	}

	return req, nil
}
