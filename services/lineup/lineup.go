package lineup

import (
	"context"
	"errors"
	"fmt"
	"squadhub/utils"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

type Service interface {
	// List returns lineups visible to the requester, newest first, honoring
	// the optional filters.
	List(ctx context.Context, q Query, who Identity) ([]Lineup, error)
	Get(ctx context.Context, id string, who Identity) (*Lineup, error)
	Create(ctx context.Context, in Input, who Identity) (*Lineup, error)
	Update(ctx context.Context, id string, in Input, who Identity) (*Lineup, error)
	Delete(ctx context.Context, id string, who Identity) error
	Policy() Policy
}

// Query holds the optional lineup list filters, both case-insensitive
// substring matches.
type Query struct {
	Title     string
	Formation string
}

func (q Query) matches(l Lineup) bool {
	if q.Title != "" && !strings.Contains(strings.ToLower(l.Title), strings.ToLower(q.Title)) {
		return false
	}
	if q.Formation != "" && !strings.Contains(strings.ToLower(l.Formation), strings.ToLower(q.Formation)) {
		return false
	}
	return true
}

type service struct {
	db     *firestore.Client
	policy Policy
}

var _ Service = (*service)(nil)

const collection = "lineups"

func NewService(db *firestore.Client, policy Policy) Service {
	return &service{
		db:     db,
		policy: policy,
	}
}

func (s *service) Policy() Policy {
	return s.policy
}

func (s *service) List(ctx context.Context, q Query, who Identity) ([]Lineup, error) {
	docs, err := s.db.Collection(collection).OrderBy("createdAt", firestore.Desc).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lineups: %w", err)
	}
	all, err := utils.GetAllToStructs[Lineup](docs)
	if err != nil {
		return nil, err
	}
	return s.filterVisible(all, q, who), nil
}

// filterVisible keeps the lineups the requester may see and that match the
// filters. Under the owned policy this list is as scoped as the by-id path.
func (s *service) filterVisible(all []Lineup, q Query, who Identity) []Lineup {
	lineups := make([]Lineup, 0, len(all))
	for i := range all {
		if !s.visible(&all[i], who) {
			continue
		}
		if q.matches(all[i]) {
			lineups = append(lineups, all[i])
		}
	}
	return lineups
}

func (s *service) Get(ctx context.Context, id string, who Identity) (*Lineup, error) {
	l, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.visible(l, who) {
		return nil, NotFound
	}
	return l, nil
}

func (s *service) get(ctx context.Context, id string) (*Lineup, error) {
	l := Lineup{}
	iter := s.db.Collection(collection).Where("id", "==", id).Limit(1).Documents(ctx)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := doc.DataTo(&l); err != nil {
			return nil, err
		}
		return &l, nil
	}
	return nil, NotFound
}

// visible reports whether the requester may address this lineup. Under the
// owned policy an ownership mismatch is indistinguishable from absence.
func (s *service) visible(l *Lineup, who Identity) bool {
	if s.policy != PolicyOwned {
		return true
	}
	return l.UserEmail == who.Email
}

func (s *service) Create(ctx context.Context, in Input, who Identity) (*Lineup, error) {
	now := time.Now()
	l, err := in.Lineup(now, who)
	if err != nil {
		return nil, err
	}
	l.CreatedAt = now
	l.UpdatedAt = now

	ref := s.db.Collection(collection).NewDoc()
	l.ID = ref.ID
	if _, err := ref.Set(ctx, l); err != nil {
		return nil, fmt.Errorf("failed to create lineup: %w", err)
	}
	return &l, nil
}

func (s *service) Update(ctx context.Context, id string, in Input, who Identity) (*Lineup, error) {
	if _, err := s.Get(ctx, id, who); err != nil {
		return nil, err
	}
	changes, err := in.Changes(time.Now())
	if err != nil {
		return nil, err
	}
	if _, err := s.db.Collection(collection).Doc(id).Set(ctx, changes, firestore.MergeAll); err != nil {
		return nil, fmt.Errorf("failed to update lineup: %w", err)
	}
	return s.Get(ctx, id, who)
}

func (s *service) Delete(ctx context.Context, id string, who Identity) error {
	if _, err := s.Get(ctx, id, who); err != nil {
		return err
	}
	if _, err := s.db.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete lineup: %w", err)
	}
	return nil
}
