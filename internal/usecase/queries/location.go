package queries

import (
	"context"
	"strings"

	"rv-portal/internal/domain/geo"
	"rv-portal/internal/domain/location"
	"rv-portal/internal/pkg/errs"
	"rv-portal/internal/usecase/shared"
)

var (
	ErrInvalidDistanceQuery = errs.New("invalid distance query")
	ErrLocationsUnavailable = errs.New("locations unavailable")
)

// MaxDistanceDestinations caps a single proxy request; the client batches underneath.
const MaxDistanceDestinations = 100

type LocationQueries interface {
	// List returns every location. With an origin, locations carry haversine miles
	// and are ordered nearest first; otherwise miles are zero and the store order is kept.
	List(ctx context.Context, origin *geo.Coordinates) ([]location.WithDistance, error)
	DrivingDistances(ctx context.Context, origin string, destinations []string) ([]shared.DrivingDistance, error)
}

type locationQueriesImpl struct {
	store    LocationReadStore
	distance DistanceClient
}

func NewLocationQueries(store LocationReadStore, distance DistanceClient) LocationQueries {
	return &locationQueriesImpl{store: store, distance: distance}
}

func (q *locationQueriesImpl) List(ctx context.Context, origin *geo.Coordinates) ([]location.WithDistance, error) {
	locs, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrLocationsUnavailable)
	}
	if origin != nil {
		return location.SortByDistance(locs, *origin), nil
	}
	out := make([]location.WithDistance, len(locs))
	for i, l := range locs {
		out[i] = location.WithDistance{Location: l}
	}
	return out, nil
}

func (q *locationQueriesImpl) DrivingDistances(ctx context.Context, origin string, destinations []string) ([]shared.DrivingDistance, error) {
	origin = strings.TrimSpace(origin)
	if origin == "" {
		return nil, errs.Mark(errs.New("origin is required"), ErrInvalidDistanceQuery)
	}
	dests := make([]string, 0, len(destinations))
	for _, d := range destinations {
		if d = strings.TrimSpace(d); d != "" {
			dests = append(dests, d)
		}
	}
	if len(dests) == 0 {
		return nil, errs.Mark(errs.New("at least one destination is required"), ErrInvalidDistanceQuery)
	}
	if len(dests) > MaxDistanceDestinations {
		return nil, errs.Mark(errs.Newf("at most %d destinations", MaxDistanceDestinations), ErrInvalidDistanceQuery)
	}

	legs, err := q.distance.Distances(ctx, origin, dests)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrUpstreamUnavailable)
	}
	return legs, nil
}
