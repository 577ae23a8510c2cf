package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/entity"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/repository"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/errors"
)

type firestoreItemRepository struct {
	client *firestore.Client
}

func NewFirestoreItemRepository(client *firestore.Client) repository.ItemRepository {
	return &firestoreItemRepository{
		client: client,
	}
}

func (r *firestoreItemRepository) Create(ctx context.Context, item *entity.Item) error {
	if item.ID == "" {
		doc := r.client.Collection("items").NewDoc()
		item.ID = doc.ID
	}

	now := time.Now()
	if item.CreatedAt.IsZero() {
		item.CreatedAt = now
	}
	item.UpdatedAt = now

	_, err := r.client.Collection("items").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to create item", err)
	}

	return nil
}

func (r *firestoreItemRepository) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	doc, err := r.client.Collection("items").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Item", err)
		}
		return nil, errors.Internal("Failed to get item", err)
	}

	var item entity.Item
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse item data", err)
	}

	return &item, nil
}

func (r *firestoreItemRepository) Update(ctx context.Context, item *entity.Item) error {
	item.UpdatedAt = time.Now()

	_, err := r.client.Collection("items").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to update item", err)
	}

	return nil
}

// UpdateIfStatus writes the item inside a transaction, checking that the
// stored status still matches expectStatus. A concurrent writer that got
// there first makes this fail with NOT_AVAILABLE.
func (r *firestoreItemRepository) UpdateIfStatus(ctx context.Context, item *entity.Item, expectStatus string) error {
	docRef := r.client.Collection("items").Doc(item.ID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(docRef)
		if err != nil {
			return err
		}

		var stored entity.Item
		if err := doc.DataTo(&stored); err != nil {
			return err
		}

		if stored.Status != expectStatus {
			return errors.NotAvailable("Item status changed concurrently", nil)
		}

		item.UpdatedAt = time.Now()
		return tx.Set(docRef, item)
	})

	if err != nil {
		if errors.Is(err, "NOT_AVAILABLE") {
			return err
		}
		return errors.Internal("Failed to update item", err)
	}

	return nil
}

func (r *firestoreItemRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("items").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete item", err)
	}

	return nil
}

func (r *firestoreItemRepository) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Item, int64, error) {
	query := r.client.Collection("items").Query

	for key, value := range filter {
		query = query.Where(key, "==", value)
	}

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, 0, errors.Internal("Failed to count items", err)
	}
	total := int64(len(allDocs))

	query = query.OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	iter := query.Documents(ctx)
	var items []*entity.Item

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to iterate items", err)
		}

		var item entity.Item
		if err := doc.DataTo(&item); err != nil {
			return nil, 0, errors.Internal("Failed to parse item data", err)
		}
		items = append(items, &item)
	}

	return items, total, nil
}

func (r *firestoreItemRepository) ListBySellerID(ctx context.Context, sellerID string, status string) ([]*entity.Item, error) {
	query := r.client.Collection("items").Query.Where("sellerId", "==", sellerID)

	if status != "" {
		query = query.Where("status", "==", status)
	}

	iter := query.Documents(ctx)
	var items []*entity.Item

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate seller items", err)
		}

		var item entity.Item
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse item data", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *firestoreItemRepository) ListByStatus(ctx context.Context, itemStatus string) ([]*entity.Item, error) {
	iter := r.client.Collection("items").Query.Where("status", "==", itemStatus).Documents(ctx)
	var items []*entity.Item

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate items by status", err)
		}

		var item entity.Item
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse item data", err)
		}
		items = append(items, &item)
	}

	return items, nil
}
