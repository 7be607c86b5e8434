// README: Vehicle catalog store backed by PostgreSQL.
package inventory

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"roadfit/internal/types"
)

// Store holds locally managed fleet records. It backs the catalog endpoint
// and serves as a fallback when the upstream API has no record of a booking.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) ListByBooking(ctx context.Context, bookingID types.ID) ([]Vehicle, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, brand, model, acriss_code, group_type,
               transmission, fuel_type, passenger_count, bag_count,
               is_new, is_recommended, is_more_luxury, has_discount, cost_eur
        FROM vehicles
        WHERE booking_id = $1
        ORDER BY id`, string(bookingID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []Vehicle
	for rows.Next() {
		var v Vehicle
		err := rows.Scan(
			&v.ID, &v.Brand, &v.Model, &v.AcrissCode, &v.GroupType,
			&v.Transmission, &v.FuelType, &v.PassengerCount, &v.BagCount,
			&v.IsNew, &v.IsRecommended, &v.IsMoreLuxury, &v.HasDiscount, &v.CostEur,
		)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (s *Store) Upsert(ctx context.Context, bookingID types.ID, v Vehicle) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO vehicles (
            id, booking_id, brand, model, acriss_code, group_type,
            transmission, fuel_type, passenger_count, bag_count,
            is_new, is_recommended, is_more_luxury, has_discount, cost_eur
        ) VALUES (
            $1, $2, $3, $4, $5, $6,
            $7, $8, $9, $10,
            $11, $12, $13, $14, $15
        )
        ON CONFLICT (id) DO UPDATE SET
            booking_id = EXCLUDED.booking_id,
            brand = EXCLUDED.brand,
            model = EXCLUDED.model,
            acriss_code = EXCLUDED.acriss_code,
            group_type = EXCLUDED.group_type,
            transmission = EXCLUDED.transmission,
            fuel_type = EXCLUDED.fuel_type,
            passenger_count = EXCLUDED.passenger_count,
            bag_count = EXCLUDED.bag_count,
            is_new = EXCLUDED.is_new,
            is_recommended = EXCLUDED.is_recommended,
            is_more_luxury = EXCLUDED.is_more_luxury,
            has_discount = EXCLUDED.has_discount,
            cost_eur = EXCLUDED.cost_eur`,
		string(v.ID), string(bookingID), v.Brand, v.Model, v.AcrissCode, v.GroupType,
		v.Transmission, v.FuelType, v.PassengerCount, v.BagCount,
		v.IsNew, v.IsRecommended, v.IsMoreLuxury, v.HasDiscount, v.CostEur,
	)
	return err
}
