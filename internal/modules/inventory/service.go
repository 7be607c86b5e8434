// README: Inventory lookup pipeline: cache, upstream API, local catalog fallback.
package inventory

import (
	"context"
	"errors"
	"log"

	"roadfit/internal/types"
)

// Fetcher is the upstream API surface the service depends on.
type Fetcher interface {
	FetchVehicles(ctx context.Context, bookingID types.ID) ([]Vehicle, error)
}

// Service resolves the candidate vehicle list for a booking.
// Cache and catalog are optional; a nil cache disables caching and a nil
// catalog disables the local fallback.
type Service struct {
	client  Fetcher
	cache   *Cache
	catalog *Store
}

func NewService(client Fetcher, cache *Cache, catalog *Store) *Service {
	return &Service{client: client, cache: cache, catalog: catalog}
}

// Lookup returns the vehicles for a booking. Resolution order: cache, then
// the upstream API, then the local catalog when upstream does not know the
// booking. Cache failures are logged and ignored; they never fail a lookup.
func (s *Service) Lookup(ctx context.Context, bookingID types.ID) ([]Vehicle, error) {
	if s.cache != nil {
		vehicles, ok, err := s.cache.Get(ctx, bookingID)
		if err != nil {
			log.Printf("inventory: cache get for booking %s: %v", bookingID, err)
		} else if ok {
			return vehicles, nil
		}
	}

	vehicles, err := s.client.FetchVehicles(ctx, bookingID)
	if errors.Is(err, ErrBookingNotFound) && s.catalog != nil {
		local, catErr := s.catalog.ListByBooking(ctx, bookingID)
		if catErr == nil && len(local) > 0 {
			return local, nil
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, bookingID, vehicles); err != nil {
			log.Printf("inventory: cache set for booking %s: %v", bookingID, err)
		}
	}
	return vehicles, nil
}
