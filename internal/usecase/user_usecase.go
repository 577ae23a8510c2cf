package usecase

import (
	"context"
	"time"

	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/entity"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/internal/domain/repository"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/errors"
	"github.com/AtharvaSavalapurkarVesit/justrungsa/pkg/logger"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	syncUC   *SyncUseCase
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	syncUC *SyncUseCase,
) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		syncUC:   syncUC,
	}
}

type CreateProfileInput struct {
	Username string
	Name     string
	Email    string
	Phone    string
	Bio      string
	Pincode  string
}

func (uc *UserUseCase) CreateProfile(ctx context.Context, uid string, input CreateProfileInput) (*entity.User, error) {
	if existing, err := uc.userRepo.GetByUsername(ctx, input.Username); err == nil && existing != nil {
		return nil, errors.BadRequest("Username is already taken", nil)
	}

	now := time.Now()
	user := &entity.User{
		ID:             uid,
		Username:       input.Username,
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		Bio:            input.Bio,
		Pincode:        input.Pincode,
		ActiveListings: []string{},
		SoldItems:      []string{},
		BoughtItems:    []string{},
		Watchlist:      []string{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user profile", err)
	}

	return user, nil
}

type UpdateProfileInput struct {
	Name    string
	Phone   string
	Bio     string
	Pincode string
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Bio != "" {
		user.Bio = input.Bio
	}
	if input.Pincode != "" {
		user.Pincode = input.Pincode
	}
	user.UpdatedAt = time.Now()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update user profile", err)
	}

	return user, nil
}

// GetProfile returns the user's profile. The reference lists are reconciled
// opportunistically first so readers never see stale listings; a failed
// reconcile is logged and the read still succeeds.
func (uc *UserUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	if _, err := uc.syncUC.ReconcileUser(ctx, uid); err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		logger.LogReconcileError(uid, "profile-read", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}
	return user, nil
}
