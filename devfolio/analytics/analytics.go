package analytics

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/devfolio/server/internal/hygraph"
)

const (
	// upper bound on counter listings, matches the admin dashboard page size
	maxListLimit = 100
)

var (
	ErrInvalidEvent = errors.New("unknown event kind")
)

func NewService(cms *hygraph.Client) *Service {
	return &Service{cms: cms}
}

// the store-side identity of a counter: one record per (type, slug) pair
func CompositeKey(contentType, slug string) string {
	return contentType + "/" + slug
}

// applies one tracked event to the counter for (contentType, slug). The write
// is a single conditional upsert-with-increment, so concurrent first-hits
// cannot double-create and concurrent updates cannot lose increments. No
// retries happen here; store errors propagate to the caller.
func (s *Service) RecordEvent(ctx context.Context, contentType, slug string, kind EventKind) (*Record, error) {
	views, clicks := 0, 0

	switch kind {
	case EventView:
		views = 1
	case EventClick:
		clicks = 1
	default:
		return nil, ErrInvalidEvent
	}

	var res struct {
		UpsertAnalytic *Record `json:"upsertAnalytic"`
	}

	err := s.cms.Request(ctx, mutationUpsertAnalytic, map[string]any{
		"key":    CompositeKey(contentType, slug),
		"type":   contentType,
		"slug":   slug,
		"views":  views,
		"clicks": clicks,
	}, &res)

	if err != nil {
		return nil, fmt.Errorf("failed to upsert counter: %w", err)
	}

	if res.UpsertAnalytic == nil {
		return nil, fmt.Errorf("upsert returned no record for %s", CompositeKey(contentType, slug))
	}

	// publish so the counter is visible on the published stage
	err = s.cms.Request(ctx, mutationPublishAnalytic, map[string]any{
		"id": res.UpsertAnalytic.ID,
	}, nil)

	if err != nil {
		return nil, fmt.Errorf("failed to publish counter: %w", err)
	}

	return res.UpsertAnalytic, nil
}

// returns counter records matching the (contentType, slug) pair
func (s *Service) Get(ctx context.Context, contentType, slug string) ([]Record, error) {
	var res struct {
		Analytics []Record `json:"analytics"`
	}

	err := s.cms.Request(ctx, queryAnalyticsByTypeAndSlug, map[string]any{
		"type": contentType,
		"slug": slug,
	}, &res)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch counters: %w", err)
	}

	return res.Analytics, nil
}

// returns up to limit counters ordered by views descending, optionally
// filtered by content type. Reads reflect the latest committed state; no
// transactional consistency with concurrent writers is promised.
func (s *Service) List(ctx context.Context, typeFilter string, limit int) ([]Record, error) {
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}

	var res struct {
		Analytics []Record `json:"analytics"`
	}

	query := queryAllAnalytics
	variables := map[string]any{"first": limit}

	if typeFilter != "" {
		query = queryAnalyticsByType
		variables["type"] = typeFilter
	}

	if err := s.cms.Request(ctx, query, variables, &res); err != nil {
		return nil, fmt.Errorf("failed to list counters: %w", err)
	}

	return res.Analytics, nil
}
