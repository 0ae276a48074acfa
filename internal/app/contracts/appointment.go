package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointmentEntity *models.Appointment) (appointmentID string, err error)
	// FindByOwner returns every appointment owned by ownerID sorted by date
	// ascending then time ascending (plain string order on both fields).
	FindByOwner(ctx context.Context, ownerID string) ([]models.Appointment, error)
	// FindByIDAndOwner resolves (id, ownerId) to a record, or (nil, nil) when
	// the record does not exist or is owned by someone else.
	FindByIDAndOwner(ctx context.Context, appointmentID, ownerID string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, status string) error
}

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, caller *models.CallerIdentity, request *requests.CreateAppointment) (*responses.Appointment, error)
	FindByOwner(ctx context.Context, caller *models.CallerIdentity) ([]responses.Appointment, error)
	CancelAppointment(ctx context.Context, caller *models.CallerIdentity, appointmentID string) (*responses.CancelAppointment, error)
}
