package usecase

import (
	"context"
	"sync"

	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/entity"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/errors"
)

type memoryItemRepo struct {
	mu    sync.Mutex
	items map[string]*entity.Item
}

func newMemoryItemRepo() *memoryItemRepo {
	return &memoryItemRepo{items: make(map[string]*entity.Item)}
}

func copyItem(item *entity.Item) *entity.Item {
	clone := *item
	return &clone
}

func (r *memoryItemRepo) Create(ctx context.Context, item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ID] = copyItem(item)
	return nil
}

func (r *memoryItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok {
		return nil, errors.NotFound("Item", nil)
	}
	return copyItem(item), nil
}

func (r *memoryItemRepo) Update(ctx context.Context, item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[item.ID]; !ok {
		return errors.NotFound("Item", nil)
	}
	r.items[item.ID] = copyItem(item)
	return nil
}

func (r *memoryItemRepo) UpdateIfStatus(ctx context.Context, item *entity.Item, expectStatus string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.items[item.ID]
	if !ok {
		return errors.NotFound("Item", nil)
	}
	if stored.Status != expectStatus {
		return errors.NotAvailable("Item status changed concurrently", nil)
	}
	r.items[item.ID] = copyItem(item)
	return nil
}

func (r *memoryItemRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *memoryItemRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Item, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.Item
	for _, item := range r.items {
		ok := true
		for key, value := range filter {
			switch key {
			case "status":
				ok = ok && item.Status == value
			case "category":
				ok = ok && item.Category == value
			}
		}
		if ok {
			matched = append(matched, copyItem(item))
		}
	}

	total := int64(len(matched))
	if offset > len(matched) {
		return []*entity.Item{}, total, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (r *memoryItemRepo) ListBySellerID(ctx context.Context, sellerID string, status string) ([]*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.Item
	for _, item := range r.items {
		if item.SellerID != sellerID {
			continue
		}
		if status != "" && item.Status != status {
			continue
		}
		matched = append(matched, copyItem(item))
	}
	return matched, nil
}

func (r *memoryItemRepo) ListByStatus(ctx context.Context, status string) ([]*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.Item
	for _, item := range r.items {
		if item.Status == status {
			matched = append(matched, copyItem(item))
		}
	}
	return matched, nil
}

type memoryUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*entity.User)}
}

func copyUser(user *entity.User) *entity.User {
	clone := *user
	clone.ActiveListings = append([]string(nil), user.ActiveListings...)
	clone.SoldItems = append([]string(nil), user.SoldItems...)
	clone.BoughtItems = append([]string(nil), user.BoughtItems...)
	clone.Watchlist = append([]string(nil), user.Watchlist...)
	return &clone
}

func (r *memoryUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = copyUser(user)
	return nil
}

func (r *memoryUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return copyUser(user), nil
}

func (r *memoryUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Username == username {
			return copyUser(user), nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *memoryUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	r.users[user.ID] = copyUser(user)
	return nil
}

func (r *memoryUserRepo) UpdateReferenceLists(ctx context.Context, user *entity.User) error {
	return r.Update(ctx, user)
}

func (r *memoryUserRepo) ListAll(ctx context.Context) ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var users []*entity.User
	for _, user := range r.users {
		users = append(users, copyUser(user))
	}
	return users, nil
}

// failingUserRepo fails UpdateReferenceLists for one user id, to exercise
// sync-failure compensation paths.
type failingUserRepo struct {
	*memoryUserRepo
	failForID string
}

func (r *failingUserRepo) UpdateReferenceLists(ctx context.Context, user *entity.User) error {
	if user.ID == r.failForID {
		return errors.Internal("simulated write failure", nil)
	}
	return r.memoryUserRepo.UpdateReferenceLists(ctx, user)
}
