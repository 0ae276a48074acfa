package doctors

import (
	"context"
	"errors"
	"math"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type doctorUsecase struct {
	DoctorRepository contracts.DoctorRepository
	RedisRepository  contracts.RedisRepository
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

var (
	doctorUsecaseInstance contracts.DoctorUsecase
	onceDoctorUsecase     sync.Once
)

func NewDoctorUsecase(
	doctorRepository contracts.DoctorRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.DoctorUsecase {
	onceDoctorUsecase.Do(func() {
		doctorUsecaseInstance = &doctorUsecase{
			DoctorRepository: doctorRepository,
			RedisRepository:  redisRepository,
			InternalConfig:   internalConfig,
			Log:              logger,
		}
	})
	return doctorUsecaseInstance
}

// FindAll serves the catalog from Redis when the cached copy is still live,
// otherwise reads MongoDB and refreshes the cache. A cache failure is logged
// and the request falls through to the database.
func (uc *doctorUsecase) FindAll(ctx context.Context) ([]models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyDoctorCatalog)
	if err != nil {
		uc.Log.Warn("doctorUsecase.FindAll error reading catalog cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if cached != "" {
		var doctors []models.Doctor
		if err := json.Unmarshal([]byte(cached), &doctors); err == nil {
			uc.Log.Info("doctorUsecase.FindAll succeeded from cache",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			return doctors, nil
		}
	}

	doctors, err := uc.DoctorRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("doctorUsecase.FindAll error finding doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	ttl := time.Duration(uc.InternalConfig.App.DoctorCacheTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyDoctorCatalog, doctors, ttl); err != nil {
		uc.Log.Warn("doctorUsecase.FindAll error writing catalog cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("doctorUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return doctors, nil
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if !isFiniteCoordinate(request.ClinicLat, -90, 90) || !isFiniteCoordinate(request.ClinicLng, -180, 180) {
		uc.Log.Warn("doctorUsecase.CreateDoctor invalid clinic coordinates",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidClinicCoordinates(errors.New("clinic coordinates out of range"))
	}

	doctorModel := &models.Doctor{
		Name:             request.Name,
		SpecializationID: request.SpecializationID,
		Specialization:   request.Specialization,
		Qualifications:   request.Qualifications,
		Experience:       request.Experience,
		ConsultationFee:  request.ConsultationFee,
		Duration:         request.Duration,
		Image:            request.Image,
		Clinic:           request.Clinic,
		ClinicAddress:    request.ClinicAddress,
		ClinicLat:        request.ClinicLat,
		ClinicLng:        request.ClinicLng,
		Available:        true,
	}
	if doctorModel.Image == "" {
		doctorModel.Image = models.DoctorDefaultImage
	}
	if request.Available != nil {
		doctorModel.Available = *request.Available
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctorModel)
	if err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor error creating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	doctorModel.ID = doctorID

	uc.invalidateCatalogCache(ctx, requestID)

	uc.Log.Info("doctorUsecase.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return doctorModel, nil
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("doctorUsecase.DeleteDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := uc.DoctorRepository.DeleteByID(ctx, doctorID)
	if err != nil {
		uc.Log.Error("doctorUsecase.DeleteDoctor error deleting doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	uc.invalidateCatalogCache(ctx, requestID)

	uc.Log.Info("doctorUsecase.DeleteDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (uc *doctorUsecase) invalidateCatalogCache(ctx context.Context, requestID string) {
	if err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyDoctorCatalog); err != nil {
		uc.Log.Warn("doctorUsecase error invalidating catalog cache",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func isFiniteCoordinate(value, min, max float64) bool {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	return value >= min && value <= max
}
