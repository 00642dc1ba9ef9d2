// Package source retrieves listings from classifieds sites or offline data.
package source

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/dal"
	"github.com/nekruzvatanshoev/carfinder/pkg/carfinder/pipeline"
)

// Source returns listings matching a search
type Source interface {
	Name() string
	Search(ctx context.Context, c dal.Criteria) ([]dal.Listing, error)
}

// Mock serves the offline listings of a market.
type Mock struct {
	Market dal.Market
}

// Name implements Source.
func (m Mock) Name() string { return "Mock" }

// Search implements Source.
func (m Mock) Search(ctx context.Context, c dal.Criteria) ([]dal.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return pipeline.Filter(dal.MockListings(m.Market), c), nil
}

// Multi queries several sources concurrently and concatenates their results
// in source order. The first failing source fails the whole search.
type Multi []Source

// Name implements Source.
func (m Multi) Name() string { return "Multi" }

// Search implements Source.
func (m Multi) Search(ctx context.Context, c dal.Criteria) ([]dal.Listing, error) {
	results := make([][]dal.Listing, len(m))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range m {
		i, s := i, s
		g.Go(func() error {
			listings, err := s.Search(ctx, c)
			if err != nil {
				return err
			}
			results[i] = listings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []dal.Listing
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

// Registry maps each market to the source searched for it.
type Registry map[dal.Market]Source

// Search runs the source registered for market m. Markets without a source
// yield no listings.
func (r Registry) Search(ctx context.Context, m dal.Market, c dal.Criteria) ([]dal.Listing, error) {
	s, ok := r[m]
	if !ok || s == nil {
		return []dal.Listing{}, nil
	}
	listings, err := s.Search(ctx, c)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []dal.Listing{}
	}
	return listings, nil
}
