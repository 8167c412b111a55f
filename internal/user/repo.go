package user

import (
	"context"

	"github.com/sushinaruto/backend/internal/types/user"
)

type UserRepository interface {
	CreateUser(ctx context.Context, u *user.User) error
	FindUserByUsername(ctx context.Context, username string) (*user.User, error)
	FindUserByEmail(ctx context.Context, email string) (*user.User, error)
	TouchLastLogin(ctx context.Context, id int64) error
}
