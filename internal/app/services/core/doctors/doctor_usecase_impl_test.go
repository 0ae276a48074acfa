package doctors

import (
	"context"
	"fmt"
	"math"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeDoctorRepository struct {
	doctors  []models.Doctor
	seq      int
	findents int
}

func (f *fakeDoctorRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	f.findents++
	catalog := make([]models.Doctor, len(f.doctors))
	copy(catalog, f.doctors)
	return catalog, nil
}

func (f *fakeDoctorRepository) CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (string, error) {
	f.seq++
	doctorModel.ID = fmt.Sprintf("doc-%d", f.seq)
	f.doctors = append(f.doctors, *doctorModel)
	return doctorModel.ID, nil
}

func (f *fakeDoctorRepository) DeleteByID(ctx context.Context, doctorID string) error {
	for i := range f.doctors {
		if f.doctors[i].ID == doctorID {
			f.doctors = append(f.doctors[:i], f.doctors[i+1:]...)
			return nil
		}
	}
	return exceptions.ErrDoctorNotFound(nil)
}

type fakeRedisRepository struct {
	store map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{store: make(map[string]string)}
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	return nil
}

// Set mirrors the production repository: values are stored marshaled.
func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = string(payload)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.store[key], nil
}

func (f *fakeRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	return 1, nil
}

func newTestDoctorUsecase(repo *fakeDoctorRepository, cache *fakeRedisRepository) *doctorUsecase {
	return &doctorUsecase{
		DoctorRepository: repo,
		RedisRepository:  cache,
		InternalConfig: &config.InternalConfig{
			App: config.App{DoctorCacheTTLInMinutes: 5},
		},
		Log: zap.NewNop(),
	}
}

func createDoctorRequest() *requests.CreateDoctor {
	return &requests.CreateDoctor{
		Name:             "Dr. Anjali Verma",
		SpecializationID: 1,
		Specialization:   "Dermatologists",
		Qualifications:   "MD Dermatology, FAAD",
		Experience:       "12 years",
		ConsultationFee:  800,
		Duration:         30,
		Clinic:           "Medibook Derma Clinic",
		ClinicAddress:    "12 MG Road, Bengaluru",
		ClinicLat:        12.9716,
		ClinicLng:        77.5946,
	}
}

func TestDoctorUsecase_CreateDoctor(t *testing.T) {
	ctx := context.Background()

	t.Run("Defaults Applied", func(t *testing.T) {
		repo := &fakeDoctorRepository{}
		uc := newTestDoctorUsecase(repo, newFakeRedisRepository())

		doctor, err := uc.CreateDoctor(ctx, createDoctorRequest())
		assert.NoError(t, err)
		assert.NotEmpty(t, doctor.ID)
		assert.True(t, doctor.Available, "availability defaults to true")
		assert.Equal(t, models.DoctorDefaultImage, doctor.Image, "image falls back to the default")
	})

	t.Run("Explicit Availability Respected", func(t *testing.T) {
		repo := &fakeDoctorRepository{}
		uc := newTestDoctorUsecase(repo, newFakeRedisRepository())

		request := createDoctorRequest()
		notAvailable := false
		request.Available = &notAvailable

		doctor, err := uc.CreateDoctor(ctx, request)
		assert.NoError(t, err)
		assert.False(t, doctor.Available)
	})

	t.Run("Non Finite Coordinates Rejected", func(t *testing.T) {
		repo := &fakeDoctorRepository{}
		uc := newTestDoctorUsecase(repo, newFakeRedisRepository())

		for name, mutate := range map[string]func(*requests.CreateDoctor){
			"NaN latitude":         func(r *requests.CreateDoctor) { r.ClinicLat = math.NaN() },
			"infinite longitude":   func(r *requests.CreateDoctor) { r.ClinicLng = math.Inf(1) },
			"latitude out of band": func(r *requests.CreateDoctor) { r.ClinicLat = 91 },
			"longitude too low":    func(r *requests.CreateDoctor) { r.ClinicLng = -181 },
		} {
			request := createDoctorRequest()
			mutate(request)

			_, err := uc.CreateDoctor(ctx, request)
			assert.Error(t, err, name)

			customErr, ok := err.(*exceptions.CustomError)
			assert.True(t, ok, name)
			assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode, name)
		}
		assert.Empty(t, repo.doctors, "no record should be written on rejection")
	})

	t.Run("Create Invalidates Catalog Cache", func(t *testing.T) {
		repo := &fakeDoctorRepository{}
		cache := newFakeRedisRepository()
		cache.store[constvars.RedisKeyDoctorCatalog] = `[{"name":"stale"}]`
		uc := newTestDoctorUsecase(repo, cache)

		_, err := uc.CreateDoctor(ctx, createDoctorRequest())
		assert.NoError(t, err)
		assert.Empty(t, cache.store[constvars.RedisKeyDoctorCatalog])
	})
}

func TestDoctorUsecase_FindAll(t *testing.T) {
	ctx := context.Background()

	t.Run("Cold Cache Reads Store And Fills Cache", func(t *testing.T) {
		repo := &fakeDoctorRepository{}
		cache := newFakeRedisRepository()
		uc := newTestDoctorUsecase(repo, cache)

		_, err := uc.CreateDoctor(ctx, createDoctorRequest())
		assert.NoError(t, err)

		doctors, err := uc.FindAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, doctors, 1)
		assert.Equal(t, 1, repo.findents)
		assert.NotEmpty(t, cache.store[constvars.RedisKeyDoctorCatalog], "cache should be filled")
	})

	t.Run("Warm Cache Skips Store", func(t *testing.T) {
		repo := &fakeDoctorRepository{}
		cache := newFakeRedisRepository()
		uc := newTestDoctorUsecase(repo, cache)

		_, _ = uc.CreateDoctor(ctx, createDoctorRequest())

		_, err := uc.FindAll(ctx)
		assert.NoError(t, err)
		doctors, err := uc.FindAll(ctx)
		assert.NoError(t, err)
		assert.Len(t, doctors, 1)
		assert.Equal(t, 1, repo.findents, "second read must come from cache")
	})
}

func TestDoctorUsecase_DeleteDoctor(t *testing.T) {
	ctx := context.Background()

	t.Run("Delete Removes Record And Invalidates Cache", func(t *testing.T) {
		repo := &fakeDoctorRepository{}
		cache := newFakeRedisRepository()
		uc := newTestDoctorUsecase(repo, cache)

		doctor, err := uc.CreateDoctor(ctx, createDoctorRequest())
		assert.NoError(t, err)

		_, _ = uc.FindAll(ctx)
		assert.NotEmpty(t, cache.store[constvars.RedisKeyDoctorCatalog])

		assert.NoError(t, uc.DeleteDoctor(ctx, doctor.ID))
		assert.Empty(t, repo.doctors)
		assert.Empty(t, cache.store[constvars.RedisKeyDoctorCatalog])
	})

	t.Run("Unknown ID Yields Not Found", func(t *testing.T) {
		repo := &fakeDoctorRepository{}
		uc := newTestDoctorUsecase(repo, newFakeRedisRepository())

		err := uc.DeleteDoctor(ctx, "missing")
		assert.Error(t, err)
	})
}
