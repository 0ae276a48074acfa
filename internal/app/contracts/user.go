package contracts

import (
	"context"
	"medibook-service/internal/app/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, userEntity *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
