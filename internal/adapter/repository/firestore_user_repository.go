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

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to create user", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := r.client.Collection("users").Where("username", "==", username).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("User", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query user by username", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}

	return &user, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	user.UpdatedAt = time.Now()

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to update user", err)
	}
	return nil
}

// UpdateReferenceLists rewrites only the denormalized item references so
// profile edits and reference syncs never clobber each other.
func (r *firestoreUserRepository) UpdateReferenceLists(ctx context.Context, user *entity.User) error {
	_, err := r.client.Collection("users").Doc(user.ID).Update(ctx, []firestore.Update{
		{Path: "activeListings", Value: user.ActiveListings},
		{Path: "soldItems", Value: user.SoldItems},
		{Path: "boughtItems", Value: user.BoughtItems},
		{Path: "watchlist", Value: user.Watchlist},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return errors.Internal("Failed to update user references", err)
	}
	return nil
}

func (r *firestoreUserRepository) ListAll(ctx context.Context) ([]*entity.User, error) {
	iter := r.client.Collection("users").Documents(ctx)
	var users []*entity.User

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate users", err)
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, errors.Internal("Failed to parse user data", err)
		}
		users = append(users, &user)
	}

	return users, nil
}
