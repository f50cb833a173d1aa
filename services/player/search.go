package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/algolia/algoliasearch-client-go/v4/algolia/search"
	"github.com/rs/zerolog/log"
)

const searchIndex = "player_index"

// SyncSearchIndex pushes the full roster to the hosted search index.
func (s *service) SyncSearchIndex(ctx context.Context) error {
	if s.searchClient == nil {
		return errors.New("search index not configured")
	}
	players, err := s.List(ctx)
	if err != nil {
		return err
	}
	records := make([]map[string]any, 0, len(players))
	for _, p := range players {
		records = append(records, map[string]any{
			"objectID":    p.ID,
			"name":        p.Name,
			"position":    p.Position,
			"nationality": p.Nationality,
			"tags":        p.Tags,
		})
	}
	result, err := s.searchClient.SaveObjects(searchIndex, records)
	if err != nil {
		return fmt.Errorf("failed to push players to search index: %w", err)
	}
	log.Info().Int("batches", len(result)).Int("players", len(records)).Msg("player search index updated")
	return nil
}

func (s *service) SearchIndex(ctx context.Context, query string, page int) ([]SearchResult, error) {
	if s.searchClient == nil {
		// No hosted index; serve the local predicate instead.
		players, err := s.Search(ctx, Query{Search: query})
		if err != nil {
			return nil, err
		}
		results := make([]SearchResult, 0, len(players))
		for _, p := range players {
			results = append(results, SearchResult{
				ID:          p.ID,
				Name:        p.Name,
				Position:    p.Position,
				Nationality: p.Nationality,
				Tags:        p.Tags,
			})
		}
		return results, nil
	}

	searchParams := search.SearchParams{
		SearchParamsObject: search.
			NewEmptySearchParamsObject().
			SetQuery(query).
			SetPage(int32(page)),
	}
	response, err := s.searchClient.SearchSingleIndex(
		s.searchClient.NewApiSearchSingleIndexRequest(searchIndex).WithSearchParams(&searchParams),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}
	results := make([]SearchResult, 0, len(response.Hits))
	for _, hit := range response.Hits {
		var result SearchResult
		// Marshal to JSON then unmarshal to struct
		jsonData, err := json.Marshal(hit)
		if err != nil {
			continue
		}
		if err := json.Unmarshal(jsonData, &result); err != nil {
			continue
		}
		results = append(results, result)
	}
	return results, nil
}
