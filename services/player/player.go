package player

import (
	"context"
	"errors"
	"fmt"
	"squadhub/utils"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/algolia/algoliasearch-client-go/v4/algolia/search"
	"google.golang.org/api/iterator"
)

type Service interface {
	// List returns every player in the store's natural order.
	List(ctx context.Context) ([]Player, error)
	// Search applies the optional filters and returns players ordered by
	// squad number ascending.
	Search(ctx context.Context, q Query) ([]Player, error)
	Get(ctx context.Context, id string) (*Player, error)
	Create(ctx context.Context, in Input) (*Player, error)
	// Replace fully re-normalizes the input and overwrites every mutable
	// field. Used by the edit form, which submits the whole record.
	Replace(ctx context.Context, id string, in Input) (*Player, error)
	// Update applies only the fields present in the input.
	Update(ctx context.Context, id string, in Input) (*Player, error)
	Delete(ctx context.Context, id string) error
	// SyncSearchIndex pushes all players to the hosted search index.
	SyncSearchIndex(ctx context.Context) error
	// SearchIndex queries the hosted index, falling back to a local search
	// when no index is configured.
	SearchIndex(ctx context.Context, query string, page int) ([]SearchResult, error)
}

type service struct {
	db           *firestore.Client
	searchClient *search.APIClient
}

var _ Service = (*service)(nil)

const collection = "players"

func NewService(db *firestore.Client, searchClient *search.APIClient) Service {
	return &service{
		db:           db,
		searchClient: searchClient,
	}
}

func (s *service) List(ctx context.Context) ([]Player, error) {
	docs, err := s.db.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch players: %w", err)
	}
	return utils.GetAllToStructs[Player](docs)
}

func (s *service) Search(ctx context.Context, q Query) ([]Player, error) {
	col := s.db.Collection(collection)
	var (
		docs []*firestore.DocumentSnapshot
		err  error
	)
	if q.Position != "" {
		docs, err = col.Where("position", "==", q.Position).Documents(ctx).GetAll()
	} else {
		docs, err = col.Documents(ctx).GetAll()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch players: %w", err)
	}
	all, err := utils.GetAllToStructs[Player](docs)
	if err != nil {
		return nil, err
	}
	players := make([]Player, 0, len(all))
	for _, p := range all {
		if q.Matches(p) {
			players = append(players, p)
		}
	}
	SortBySquadNumber(players)
	return players, nil
}

func (s *service) Get(ctx context.Context, id string) (*Player, error) {
	p := Player{}
	iter := s.db.Collection(collection).Where("id", "==", id).Limit(1).Documents(ctx)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := doc.DataTo(&p); err != nil {
			return nil, err
		}
		return &p, nil
	}
	return nil, NotFound
}

func (s *service) Create(ctx context.Context, in Input) (*Player, error) {
	p, err := in.Player()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	ref := s.db.Collection(collection).NewDoc()
	p.ID = ref.ID
	if _, err := ref.Set(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return &p, nil
}

func (s *service) Replace(ctx context.Context, id string, in Input) (*Player, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	p, err := in.Player()
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	if _, err := s.db.Collection(collection).Doc(id).Set(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return &p, nil
}

func (s *service) Update(ctx context.Context, id string, in Input) (*Player, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	changes, err := in.Changes(time.Now())
	if err != nil {
		return nil, err
	}
	if _, err := s.db.Collection(collection).Doc(id).Set(ctx, changes, firestore.MergeAll); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if _, err := s.db.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}
	return nil
}
