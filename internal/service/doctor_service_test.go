package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/mocks"
	"github.com/agendamed/agenda-api/internal/service"
)

func TestDoctorServiceCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	city, err := domain.NewCity("São Paulo", "SP")
	require.NoError(t, err)

	t.Run("creates doctor in existing city", func(t *testing.T) {
		t.Parallel()

		doctors := mocks.NewMockDoctorStore()
		svc := service.NewDoctorService(doctors, mocks.NewMockCityStore(city))

		doctor, err := svc.Create(ctx, "Dra. Maria Souza", "Cardiologia", city.ID)
		require.NoError(t, err)
		assert.Equal(t, city.ID, doctor.CityID)
		assert.Len(t, doctors.Doctors, 1)
	})

	t.Run("rejects unknown city", func(t *testing.T) {
		t.Parallel()

		svc := service.NewDoctorService(mocks.NewMockDoctorStore(), mocks.NewMockCityStore(city))

		_, err := svc.Create(ctx, "Dra. Maria Souza", "Cardiologia", uuid.New())

		var validationErr *domain.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "cidade_id", validationErr.Field)
		assert.Equal(t, service.MsgUnknownCity, validationErr.Message)
	})
}

func TestDoctorServiceList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	city, err := domain.NewCity("São Paulo", "SP")
	require.NoError(t, err)
	otherCity, err := domain.NewCity("Curitiba", "PR")
	require.NoError(t, err)

	joao, err := domain.NewDoctor("Dr. João Silva", "Cardiologia", city.ID)
	require.NoError(t, err)
	maria, err := domain.NewDoctor("Dra. Maria Souza", "Dermatologia", otherCity.ID)
	require.NoError(t, err)

	svc := service.NewDoctorService(
		mocks.NewMockDoctorStore(joao, maria),
		mocks.NewMockCityStore(city, otherCity),
	)

	t.Run("name search ignores honorifics", func(t *testing.T) {
		t.Parallel()

		doctors, err := svc.ListAll(ctx, "dr joão")
		require.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, "Dr. João Silva", doctors[0].Name)
	})

	t.Run("name search ignores accents", func(t *testing.T) {
		t.Parallel()

		doctors, err := svc.ListAll(ctx, "dr joao")
		require.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, "Dr. João Silva", doctors[0].Name)
	})

	t.Run("list by city", func(t *testing.T) {
		t.Parallel()

		doctors, err := svc.ListByCity(ctx, otherCity.ID, "")
		require.NoError(t, err)
		require.Len(t, doctors, 1)
		assert.Equal(t, "Dra. Maria Souza", doctors[0].Name)
	})
}
