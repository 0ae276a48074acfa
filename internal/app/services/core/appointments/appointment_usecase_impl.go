package appointments

import (
	"context"
	"errors"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	Log                   *zap.Logger
}

var (
	appointmentUsecaseInstance contracts.AppointmentUsecase
	onceAppointmentUsecase     sync.Once
)

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	onceAppointmentUsecase.Do(func() {
		appointmentUsecaseInstance = &appointmentUsecase{
			AppointmentRepository: appointmentRepository,
			Log:                   logger,
		}
	})
	return appointmentUsecaseInstance
}

// CreateAppointment books for the authenticated caller. Ownership, booking
// timestamp and the initial Confirmed status are always server-assigned;
// nothing in the request body can override them.
func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, caller *models.CallerIdentity, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, caller.UserID),
	)

	now := time.Now()
	appointmentModel := &models.Appointment{
		OwnerID:         caller.UserID,
		DoctorID:        request.DoctorID,
		DoctorName:      request.DoctorName,
		Specialization:  request.Specialization,
		Clinic:          request.Clinic,
		Date:            request.Date,
		Time:            request.Time,
		ConsultationFee: request.ConsultationFee,
		Reason:          request.Reason,
		Status:          constvars.AppointmentStatusConfirmed,
		BookedAt:        now.Format(constvars.DateLayoutISO),
	}

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointmentModel)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CreateAppointment error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	appointmentModel.ID = appointmentID

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, caller.UserID),
	)
	response := buildAppointmentResponse(appointmentModel, now)
	return &response, nil
}

func (uc *appointmentUsecase) FindByOwner(ctx context.Context, caller *models.CallerIdentity) ([]responses.Appointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.FindByOwner called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, caller.UserID),
	)

	appointments, err := uc.AppointmentRepository.FindByOwner(ctx, caller.UserID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.FindByOwner error finding appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	now := time.Now()
	response := make([]responses.Appointment, 0, len(appointments))
	for i := range appointments {
		response = append(response, buildAppointmentResponse(&appointments[i], now))
	}

	uc.Log.Info("appointmentUsecase.FindByOwner succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, caller.UserID),
	)
	return response, nil
}

// CancelAppointment soft-cancels the caller's own appointment. A foreign or
// unknown id yields not-found; cancelling an already cancelled appointment
// succeeds without another write.
func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, caller *models.CallerIdentity, appointmentID string) (*responses.CancelAppointment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentUsecase.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, caller.UserID),
	)

	appointment, err := uc.AppointmentRepository.FindByIDAndOwner(ctx, appointmentID, caller.UserID)
	if err != nil {
		uc.Log.Error("appointmentUsecase.CancelAppointment error finding appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if appointment == nil {
		uc.Log.Warn("appointmentUsecase.CancelAppointment appointment not found for caller",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, caller.UserID),
		)
		return nil, exceptions.ErrAppointmentNotFound(errors.New("appointment not found for caller"))
	}

	if appointment.Status != constvars.AppointmentStatusCancelled {
		if err := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, constvars.AppointmentStatusCancelled); err != nil {
			uc.Log.Error("appointmentUsecase.CancelAppointment error updating status",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
	}

	uc.Log.Info("appointmentUsecase.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, caller.UserID),
	)
	return &responses.CancelAppointment{
		ID:     appointmentID,
		Status: constvars.AppointmentStatusCancelled,
	}, nil
}

func buildAppointmentResponse(appointment *models.Appointment, now time.Time) responses.Appointment {
	return responses.Appointment{
		ID:              appointment.ID,
		OwnerID:         appointment.OwnerID,
		DoctorID:        appointment.DoctorID,
		DoctorName:      appointment.DoctorName,
		Specialization:  appointment.Specialization,
		Clinic:          appointment.Clinic,
		Date:            appointment.Date,
		Time:            appointment.Time,
		ConsultationFee: appointment.ConsultationFee,
		Reason:          appointment.Reason,
		Status:          appointment.Status,
		DisplayStatus:   models.ClassifyStatus(appointment, now),
		BookedAt:        appointment.BookedAt,
		CreatedAt:       appointment.CreatedAt,
		UpdatedAt:       appointment.UpdatedAt,
	}
}
