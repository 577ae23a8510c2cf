package repository

import (
	"context"

	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/entity"
)

type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	// UpdateIfStatus writes the item only when the stored status still equals
	// expectStatus, failing with NOT_AVAILABLE otherwise.
	UpdateIfStatus(ctx context.Context, item *entity.Item, expectStatus string) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Item, int64, error)
	ListBySellerID(ctx context.Context, sellerID string, status string) ([]*entity.Item, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Item, error)
}
