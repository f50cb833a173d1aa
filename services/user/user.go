package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/iterator"
)

type Service interface {
	GetUser(ctx context.Context, ID string) (*User, error)
	// Resolve upserts the user keyed by (provider, providerId): first
	// sign-in inserts with createdAt, every sign-in refreshes the profile
	// fields and lastLogin.
	Resolve(ctx context.Context, profile Profile) (*User, error)
}

type service struct {
	db *firestore.Client
}

var _ Service = (*service)(nil)

const userCollection = "users"

func NewService(db *firestore.Client) Service {
	return &service{
		db: db,
	}
}

var NotFound = errors.New("user not found")

func (s *service) GetUser(ctx context.Context, ID string) (*User, error) {
	u := User{}
	iter := s.db.Collection(userCollection).Where("id", "==", ID).Limit(1).Documents(ctx)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := doc.DataTo(&u); err != nil {
			return nil, err
		}
		return &u, nil
	}
	return nil, NotFound
}

func (s *service) Resolve(ctx context.Context, profile Profile) (*User, error) {
	if profile.ProviderID == "" {
		return nil, errors.New("profile missing provider id")
	}
	if profile.DisplayName == "" {
		profile.DisplayName = DefaultDisplayName
	}
	now := time.Now()

	existing, err := s.getByProviderID(ctx, profile.ProviderID)
	if err != nil && !errors.Is(err, NotFound) {
		return nil, err
	}

	if existing == nil {
		u := User{
			Provider:    profile.Provider,
			ProviderID:  profile.ProviderID,
			Email:       profile.Email,
			DisplayName: profile.DisplayName,
			AvatarURL:   profile.AvatarURL,
			CreatedAt:   now,
			LastLogin:   now,
		}
		ref := s.db.Collection(userCollection).NewDoc()
		u.ID = ref.ID
		if _, err := ref.Set(ctx, u); err != nil {
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
		return &u, nil
	}

	_, err = s.db.Collection(userCollection).Doc(existing.ID).Set(ctx, map[string]any{
		"provider":    profile.Provider,
		"providerId":  profile.ProviderID,
		"email":       profile.Email,
		"displayName": profile.DisplayName,
		"avatarUrl":   profile.AvatarURL,
		"lastLogin":   now,
	}, firestore.MergeAll)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh user: %w", err)
	}

	u, err := s.GetUser(ctx, existing.ID)
	if err != nil {
		// Driver return shapes vary; retry through the natural key before
		// declaring the sign-in failed.
		log.Warn().Str("providerId", profile.ProviderID).Msg("re-fetching user by provider id")
		u, err = s.getByProviderID(ctx, profile.ProviderID)
		if err != nil {
			return nil, fmt.Errorf("failed to create or find user: %w", err)
		}
	}
	return u, nil
}

func (s *service) getByProviderID(ctx context.Context, providerID string) (*User, error) {
	u := User{}
	iter := s.db.Collection(userCollection).Where("providerId", "==", providerID).Limit(1).Documents(ctx)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := doc.DataTo(&u); err != nil {
			return nil, err
		}
		return &u, nil
	}
	return nil, NotFound
}
