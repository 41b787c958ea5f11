package vehicles

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m-ilin/PAG-AppointmentService/internal/domain"
	vehicleRepo "github.com/m-ilin/PAG-AppointmentService/internal/infra/storage/vehicle"
	"github.com/m-ilin/PAG-AppointmentService/internal/service/vehicles/models"
)

type stubVehicleRepo struct {
	byID map[uuid.UUID]*domain.Vehicle

	deletedID uuid.UUID
}

func newStubRepo(vehicles ...*domain.Vehicle) *stubVehicleRepo {
	byID := make(map[uuid.UUID]*domain.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}
	return &stubVehicleRepo{byID: byID}
}

func (s *stubVehicleRepo) Create(_ context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	s.byID[v.ID] = v
	return v, nil
}

func (s *stubVehicleRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Vehicle, error) {
	v, ok := s.byID[id]
	if !ok {
		return nil, vehicleRepo.ErrVehicleNotFound
	}
	c := *v
	return &c, nil
}

func (s *stubVehicleRepo) ListByAccount(_ context.Context, accountID uuid.UUID) ([]*domain.Vehicle, error) {
	var out []*domain.Vehicle
	for _, v := range s.byID {
		if v.IsOwnedBy(accountID) {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *stubVehicleRepo) Update(_ context.Context, v *domain.Vehicle) error {
	if _, ok := s.byID[v.ID]; !ok {
		return vehicleRepo.ErrVehicleNotFound
	}
	c := *v
	s.byID[v.ID] = &c
	return nil
}

func (s *stubVehicleRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.byID[id]; !ok {
		return vehicleRepo.ErrVehicleNotFound
	}
	delete(s.byID, id)
	s.deletedID = id
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testVehicle(accountID uuid.UUID) *domain.Vehicle {
	return &domain.Vehicle{
		ID:        uuid.New(),
		AccountID: accountID,
		Year:      2019,
		Make:      "Toyota",
		Model:     "Corolla",
	}
}

func TestCreate(t *testing.T) {
	owner := uuid.New()
	repo := newStubRepo()
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Create(context.Background(), owner, &models.CreateVehicleRequest{
		Year:  2021,
		Make:  " Honda ",
		Model: "Civic",
	})

	require.NoError(t, err)
	assert.Equal(t, "Honda", resp.Make)
	assert.Equal(t, 2021, resp.Year)
}

func TestCreate_InvalidYear(t *testing.T) {
	svc := NewService(newStubRepo(), nopLogger{})

	for _, year := range []int{1899, 3000} {
		_, err := svc.Create(context.Background(), uuid.New(), &models.CreateVehicleRequest{
			Year:  year,
			Make:  "Honda",
			Model: "Civic",
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "year %d", year)
	}
}

func TestCreate_MissingMake(t *testing.T) {
	svc := NewService(newStubRepo(), nopLogger{})

	_, err := svc.Create(context.Background(), uuid.New(), &models.CreateVehicleRequest{
		Year:  2020,
		Make:  "  ",
		Model: "Civic",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdate_Owner(t *testing.T) {
	owner := uuid.New()
	vehicle := testVehicle(owner)
	svc := NewService(newStubRepo(vehicle), nopLogger{})

	model := "Camry"
	resp, err := svc.Update(context.Background(), vehicle.ID, owner, &models.UpdateVehicleRequest{Model: &model})

	require.NoError(t, err)
	assert.Equal(t, "Camry", resp.Model)
	assert.Equal(t, "Toyota", resp.Make)
}

func TestUpdate_NotOwner(t *testing.T) {
	vehicle := testVehicle(uuid.New())
	svc := NewService(newStubRepo(vehicle), nopLogger{})

	model := "Camry"
	_, err := svc.Update(context.Background(), vehicle.ID, uuid.New(), &models.UpdateVehicleRequest{Model: &model})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUpdate_OverlayValidated(t *testing.T) {
	owner := uuid.New()
	vehicle := testVehicle(owner)
	svc := NewService(newStubRepo(vehicle), nopLogger{})

	empty := ""
	_, err := svc.Update(context.Background(), vehicle.ID, owner, &models.UpdateVehicleRequest{Make: &empty})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDelete_Owner(t *testing.T) {
	owner := uuid.New()
	vehicle := testVehicle(owner)
	repo := newStubRepo(vehicle)
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Delete(context.Background(), vehicle.ID, owner))
	assert.Equal(t, vehicle.ID, repo.deletedID)
}

func TestDelete_NotOwner(t *testing.T) {
	vehicle := testVehicle(uuid.New())
	svc := NewService(newStubRepo(vehicle), nopLogger{})

	err := svc.Delete(context.Background(), vehicle.ID, uuid.New())

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(newStubRepo(), nopLogger{})

	err := svc.Delete(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestList_FiltersToOwner(t *testing.T) {
	owner := uuid.New()
	mine := testVehicle(owner)
	theirs := testVehicle(uuid.New())
	svc := NewService(newStubRepo(mine, theirs), nopLogger{})

	resp, err := svc.List(context.Background(), owner)

	require.NoError(t, err)
	require.Len(t, resp.Vehicles, 1)
	assert.Equal(t, mine.ID, resp.Vehicles[0].ID)
}
