package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provora/SchedulingService/internal/domain"
	serviceRepo "github.com/provora/SchedulingService/internal/infra/storage/service"
	"github.com/provora/SchedulingService/internal/service/catalog/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeServiceRepo struct {
	nextID   int64
	services map[int64]*domain.ServiceDefinition
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: map[int64]*domain.ServiceDefinition{}}
}

func (r *fakeServiceRepo) Create(_ context.Context, svc *domain.ServiceDefinition) (*domain.ServiceDefinition, error) {
	r.nextID++
	stored := *svc
	stored.ID = r.nextID
	r.services[stored.ID] = &stored
	return &stored, nil
}

func (r *fakeServiceRepo) GetByID(_ context.Context, id int64) (*domain.ServiceDefinition, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	copied := *svc
	return &copied, nil
}

func (r *fakeServiceRepo) GetByOwner(_ context.Context, ownerID int64) ([]*domain.ServiceDefinition, error) {
	var result []*domain.ServiceDefinition
	for _, svc := range r.services {
		if svc.OwnerID == ownerID {
			result = append(result, svc)
		}
	}
	return result, nil
}

func (r *fakeServiceRepo) Update(_ context.Context, svc *domain.ServiceDefinition) (*domain.ServiceDefinition, error) {
	if _, ok := r.services[svc.ID]; !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	stored := *svc
	r.services[svc.ID] = &stored
	return &stored, nil
}

func validCreateRequest() *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		OwnerID:         100,
		Name:            "Консультация",
		DurationMinutes: 60,
		Price:           1500,
		WeeklyAvailability: models.WeeklyAvailabilityPayload{
			Monday: &models.DayWindowPayload{Start: "09:00", End: "17:00"},
		},
		BookingBufferMinutes: 15,
		AdvanceBookingHours:  2,
	}
}

func TestCreate(t *testing.T) {
	svc := NewService(newFakeServiceRepo(), nopLogger{})

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, int64(100), resp.OwnerID)
	assert.Equal(t, domain.DefaultCurrency, resp.Currency, "currency defaults when omitted")
	require.NotNil(t, resp.WeeklyAvailability.Monday)
	assert.Equal(t, "09:00", resp.WeeklyAvailability.Monday.Start)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newFakeServiceRepo(), nopLogger{})

	tests := []struct {
		name   string
		mutate func(r *models.CreateServiceRequest)
	}{
		{name: "empty name", mutate: func(r *models.CreateServiceRequest) { r.Name = "" }},
		{name: "zero duration", mutate: func(r *models.CreateServiceRequest) { r.DurationMinutes = 0 }},
		{name: "negative price", mutate: func(r *models.CreateServiceRequest) { r.Price = -1 }},
		{name: "negative buffer", mutate: func(r *models.CreateServiceRequest) { r.BookingBufferMinutes = -1 }},
		{name: "window start after end", mutate: func(r *models.CreateServiceRequest) {
			r.WeeklyAvailability.Monday = &models.DayWindowPayload{Start: "17:00", End: "09:00"}
		}},
		{name: "bad time format", mutate: func(r *models.CreateServiceRequest) {
			r.WeeklyAvailability.Monday = &models.DayWindowPayload{Start: "9am", End: "17:00"}
		}},
		{name: "max advance below min advance", mutate: func(r *models.CreateServiceRequest) {
			r.AdvanceBookingHours = 48
			r.MaxAdvanceBookingHours = 24
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate_OwnerOnly(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewService(repo, nopLogger{})

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	update := &models.UpdateServiceRequest{
		RequesterID:     77, // not the owner
		Name:            "Другое имя",
		DurationMinutes: 30,
		WeeklyAvailability: models.WeeklyAvailabilityPayload{
			Monday: &models.DayWindowPayload{Start: "10:00", End: "16:00"},
		},
	}
	_, err = svc.Update(context.Background(), created.ID, update)
	assert.ErrorIs(t, err, ErrAccessDenied)

	update.RequesterID = 100
	updated, err := svc.Update(context.Background(), created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Другое имя", updated.Name)
	assert.Equal(t, 30, updated.DurationMinutes)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newFakeServiceRepo(), nopLogger{})

	update := &models.UpdateServiceRequest{
		RequesterID:     100,
		Name:            "Имя",
		DurationMinutes: 30,
		WeeklyAvailability: models.WeeklyAvailabilityPayload{
			Monday: &models.DayWindowPayload{Start: "10:00", End: "16:00"},
		},
	}
	_, err := svc.Update(context.Background(), 999, update)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestGetByOwner(t *testing.T) {
	repo := newFakeServiceRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	other := validCreateRequest()
	other.OwnerID = 200
	_, err = svc.Create(context.Background(), other)
	require.NoError(t, err)

	resp, err := svc.GetByOwner(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)

	_, err = svc.GetByOwner(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
