package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// CompanyCityStore owns the company_cities join table: one row per
// (company, city) pair with at least one open job.
type CompanyCityStore struct {
	db DB
}

// NewCompanyCityStore returns a CompanyCityStore running on db.
func NewCompanyCityStore(db DB) *CompanyCityStore {
	return &CompanyCityStore{db: db}
}

func (s *CompanyCityStore) on(tx pgx.Tx) DB {
	if tx != nil {
		return tx
	}
	return s.db
}

// Create records that the company has a job in the city. Creating an
// existing pair is a no-op.
func (s *CompanyCityStore) Create(ctx context.Context, tx pgx.Tx, companyID, cityID int64) error {
	_, err := s.on(tx).Exec(ctx,
		`INSERT INTO company_cities (company_id, city_id) VALUES ($1, $2)
		 ON CONFLICT (company_id, city_id) DO NOTHING`, companyID, cityID)
	if err != nil {
		return fmt.Errorf("insert company city (%d, %d): %w", companyID, cityID, err)
	}
	return nil
}

// Delete removes the (company, city) pair.
func (s *CompanyCityStore) Delete(ctx context.Context, tx pgx.Tx, companyID, cityID int64) error {
	_, err := s.on(tx).Exec(ctx,
		`DELETE FROM company_cities WHERE company_id = $1 AND city_id = $2`, companyID, cityID)
	if err != nil {
		return fmt.Errorf("delete company city (%d, %d): %w", companyID, cityID, err)
	}
	return nil
}
