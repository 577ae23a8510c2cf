package repository

import (
	"context"

	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateReferenceLists(ctx context.Context, user *entity.User) error
	ListAll(ctx context.Context) ([]*entity.User, error)
}
