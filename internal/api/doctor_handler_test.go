package api_test

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendamed/agenda-api/internal/api"
	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/mocks"
	"github.com/agendamed/agenda-api/internal/service"
)

type doctorFixture struct {
	router   chi.Router
	city     *domain.City
	joao     *domain.Doctor
	maria    *domain.Doctor
	patients *mocks.MockPatientStore
}

func newDoctorFixture(t *testing.T) doctorFixture {
	t.Helper()

	city, err := domain.NewCity("São Paulo", "SP")
	require.NoError(t, err)
	joao, err := domain.NewDoctor("Dr. João Silva", "Cardiologia", city.ID)
	require.NoError(t, err)
	maria, err := domain.NewDoctor("Dra. Maria Souza", "Dermatologia", city.ID)
	require.NoError(t, err)

	patients := mocks.NewMockPatientStore()
	doctorService := service.NewDoctorService(
		mocks.NewMockDoctorStore(joao, maria),
		mocks.NewMockCityStore(city),
	)
	patientService := service.NewPatientService(patients)
	handler := api.NewDoctorHandler(doctorService, patientService)

	router := chi.NewRouter()
	router.Get("/v1/medicos", handler.List)
	router.Get("/v1/cidades/{cidade_id}/medicos", handler.ListByCity)
	router.Post("/v1/medicos", handler.Create)
	router.Get("/v1/medicos/{id_medico}/pacientes", handler.ListPatients)

	return doctorFixture{
		router:   router,
		city:     city,
		joao:     joao,
		maria:    maria,
		patients: patients,
	}
}

func TestDoctorHandlerList(t *testing.T) {
	t.Parallel()

	t.Run("lists all ordered by stripped name", func(t *testing.T) {
		t.Parallel()

		fx := newDoctorFixture(t)
		rec, env := doRequest(t, fx.router, http.MethodGet, "/v1/medicos", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var doctors []*domain.Doctor
		decodeItem(t, env, &doctors)
		require.Len(t, doctors, 2)
		assert.Equal(t, "Dr. João Silva", doctors[0].Name)
		assert.Equal(t, "Dra. Maria Souza", doctors[1].Name)
	})

	t.Run("search term with honorific matches", func(t *testing.T) {
		t.Parallel()

		fx := newDoctorFixture(t)
		rec, env := doRequest(t, fx.router, http.MethodGet,
			"/v1/medicos?nome="+url.QueryEscape("dr maria"), nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var doctors []*domain.Doctor
		decodeItem(t, env, &doctors)
		require.Len(t, doctors, 1)
		assert.Equal(t, fx.maria.ID, doctors[0].ID)
	})

	t.Run("unaccented search term matches accented name", func(t *testing.T) {
		t.Parallel()

		fx := newDoctorFixture(t)
		rec, env := doRequest(t, fx.router, http.MethodGet,
			"/v1/medicos?nome="+url.QueryEscape("dr joao"), nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var doctors []*domain.Doctor
		decodeItem(t, env, &doctors)
		require.Len(t, doctors, 1)
		assert.Equal(t, fx.joao.ID, doctors[0].ID)
	})
}

func TestDoctorHandlerListByCity(t *testing.T) {
	t.Parallel()

	t.Run("lists doctors of the city", func(t *testing.T) {
		t.Parallel()

		fx := newDoctorFixture(t)
		rec, env := doRequest(t, fx.router, http.MethodGet,
			"/v1/cidades/"+fx.city.ID.String()+"/medicos", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var doctors []*domain.Doctor
		decodeItem(t, env, &doctors)
		assert.Len(t, doctors, 2)
	})

	t.Run("malformed city ID returns 422", func(t *testing.T) {
		t.Parallel()

		fx := newDoctorFixture(t)
		rec, _ := doRequest(t, fx.router, http.MethodGet, "/v1/cidades/abc/medicos", nil)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestDoctorHandlerCreate(t *testing.T) {
	t.Parallel()

	t.Run("creates a doctor", func(t *testing.T) {
		t.Parallel()

		fx := newDoctorFixture(t)
		rec, env := doRequest(t, fx.router, http.MethodPost, "/v1/medicos", map[string]string{
			"nome":          "Dr. Carlos Pereira",
			"especialidade": "Ortopedia",
			"cidade_id":     fx.city.ID.String(),
		})

		assert.Equal(t, http.StatusCreated, rec.Code)

		var doctor domain.Doctor
		decodeItem(t, env, &doctor)
		assert.Equal(t, "Dr. Carlos Pereira", doctor.Name)
		assert.Equal(t, fx.city.ID, doctor.CityID)
	})

	t.Run("unknown city returns 422", func(t *testing.T) {
		t.Parallel()

		fx := newDoctorFixture(t)
		rec, env := doRequest(t, fx.router, http.MethodPost, "/v1/medicos", map[string]string{
			"nome":          "Dr. Carlos Pereira",
			"especialidade": "Ortopedia",
			"cidade_id":     uuid.NewString(),
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, service.MsgUnknownCity, env.Error)
	})

	t.Run("missing specialty returns 422", func(t *testing.T) {
		t.Parallel()

		fx := newDoctorFixture(t)
		rec, _ := doRequest(t, fx.router, http.MethodPost, "/v1/medicos", map[string]string{
			"nome":      "Dr. Carlos Pereira",
			"cidade_id": fx.city.ID.String(),
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestDoctorHandlerListPatients(t *testing.T) {
	t.Parallel()

	now := time.Now()

	seedPatient := func(t *testing.T, fx doctorFixture, name string, times ...time.Time) *domain.Patient {
		t.Helper()

		patient, err := domain.NewPatient(name, uuid.NewString()[:11], "11999990000")
		require.NoError(t, err)
		for _, at := range times {
			appointment, err := domain.NewAppointment(fx.joao.ID, patient.ID, at)
			require.NoError(t, err)
			patient.Appointments = append(patient.Appointments, appointment)
		}
		fx.patients.Patients = append(fx.patients.Patients, patient)
		return patient
	}

	t.Run("orders patients by earliest appointment", func(t *testing.T) {
		t.Parallel()

		fx := newDoctorFixture(t)
		late := seedPatient(t, fx, "Bruno Costa", now.Add(48*time.Hour))
		early := seedPatient(t, fx, "Ana Lima", now.Add(2*time.Hour), now.Add(72*time.Hour))

		rec, env := doRequest(t, fx.router, http.MethodGet,
			"/v1/medicos/"+fx.joao.ID.String()+"/pacientes", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var patients []*domain.Patient
		decodeItem(t, env, &patients)
		require.Len(t, patients, 2)
		assert.Equal(t, early.ID, patients[0].ID)
		assert.Equal(t, late.ID, patients[1].ID)
		assert.Len(t, patients[0].Appointments, 2, "appointments must be eager-loaded")
	})

	t.Run("apenas-agendadas drops past appointments", func(t *testing.T) {
		t.Parallel()

		fx := newDoctorFixture(t)
		seedPatient(t, fx, "Bruno Costa", now.Add(-48*time.Hour))
		upcoming := seedPatient(t, fx, "Ana Lima", now.Add(2*time.Hour))

		rec, env := doRequest(t, fx.router, http.MethodGet,
			"/v1/medicos/"+fx.joao.ID.String()+"/pacientes?apenas-agendadas=true", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var patients []*domain.Patient
		decodeItem(t, env, &patients)
		require.Len(t, patients, 1)
		assert.Equal(t, upcoming.ID, patients[0].ID)
	})

	t.Run("filters by patient name", func(t *testing.T) {
		t.Parallel()

		fx := newDoctorFixture(t)
		seedPatient(t, fx, "Bruno Costa", now.Add(2*time.Hour))
		ana := seedPatient(t, fx, "Ana Lima", now.Add(4*time.Hour))

		rec, env := doRequest(t, fx.router, http.MethodGet,
			"/v1/medicos/"+fx.joao.ID.String()+"/pacientes?nome=Ana", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var patients []*domain.Patient
		decodeItem(t, env, &patients)
		require.Len(t, patients, 1)
		assert.Equal(t, ana.ID, patients[0].ID)
	})

	t.Run("patient name filter is case-insensitive", func(t *testing.T) {
		t.Parallel()

		fx := newDoctorFixture(t)
		seedPatient(t, fx, "Bruno Costa", now.Add(2*time.Hour))
		ana := seedPatient(t, fx, "Ana Lima", now.Add(4*time.Hour))

		rec, env := doRequest(t, fx.router, http.MethodGet,
			"/v1/medicos/"+fx.joao.ID.String()+"/pacientes?nome=ana", nil)

		assert.Equal(t, http.StatusOK, rec.Code)

		var patients []*domain.Patient
		decodeItem(t, env, &patients)
		require.Len(t, patients, 1)
		assert.Equal(t, ana.ID, patients[0].ID)
	})
}
