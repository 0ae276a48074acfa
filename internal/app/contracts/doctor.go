package contracts

import (
	"context"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
)

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	CreateDoctor(ctx context.Context, doctorEntity *models.Doctor) (doctorID string, err error)
	DeleteByID(ctx context.Context, doctorID string) error
}

type DoctorUsecase interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error)
	DeleteDoctor(ctx context.Context, doctorID string) error
}
