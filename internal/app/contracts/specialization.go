package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type SpecializationUsecase interface {
	FindAll(ctx context.Context) ([]models.Specialization, error)
}
