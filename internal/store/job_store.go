package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"jobmate/job-service/internal/model"
)

const jobColumns = `id, title_id, company_id, city_id, employment_type_id,
	experience_level_id, description, min_salary, max_salary,
	deleted_at, created_at, updated_at`

// JobStore owns the jobs table. Jobs are soft-deleted: every read filters
// on deleted_at IS NULL.
type JobStore struct {
	db DB
}

// NewJobStore returns a JobStore running on db.
func NewJobStore(db DB) *JobStore {
	return &JobStore{db: db}
}

// on returns tx when supplied, otherwise the store's own connection.
func (s *JobStore) on(tx pgx.Tx) DB {
	if tx != nil {
		return tx
	}
	return s.db
}

func scanJob(row pgx.Row) (*model.Job, error) {
	var j model.Job
	err := row.Scan(
		&j.ID, &j.TitleID, &j.CompanyID, &j.CityID, &j.EmploymentTypeID,
		&j.ExperienceLevelID, &j.Description, &j.MinSalary, &j.MaxSalary,
		&j.DeletedAt, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Create inserts a new job and returns the stored record.
func (s *JobStore) Create(ctx context.Context, tx pgx.Tx, in model.NewJob) (*model.Job, error) {
	row := s.on(tx).QueryRow(ctx,
		`INSERT INTO jobs (title_id, company_id, city_id, employment_type_id,
		                   experience_level_id, description, min_salary, max_salary)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+jobColumns,
		in.TitleID, in.CompanyID, in.CityID, in.EmploymentTypeID,
		in.ExperienceLevelID, in.Description, in.MinSalary, in.MaxSalary,
	)
	job, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}
	return job, nil
}

// FindByID returns the job with the given id, or (nil, nil) when no live
// row exists.
func (s *JobStore) FindByID(ctx context.Context, id int64) (*model.Job, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1 AND deleted_at IS NULL`, id)
	job, err := scanJob(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find job %d: %w", id, err)
	}
	return job, nil
}

// UpdateByID applies the non-nil fields of patch and returns the updated
// record, or (nil, nil) when no live row matches.
func (s *JobStore) UpdateByID(ctx context.Context, tx pgx.Tx, id int64, patch model.JobPatch) (*model.Job, error) {
	sets := []string{"updated_at = NOW()"}
	args := []any{}
	add := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.TitleID != nil {
		add("title_id", *patch.TitleID)
	}
	if patch.CompanyID != nil {
		add("company_id", *patch.CompanyID)
	}
	if patch.CityID != nil {
		add("city_id", *patch.CityID)
	}
	if patch.EmploymentTypeID != nil {
		add("employment_type_id", *patch.EmploymentTypeID)
	}
	if patch.ExperienceLevelID != nil {
		add("experience_level_id", *patch.ExperienceLevelID)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.MinSalary != nil {
		add("min_salary", *patch.MinSalary)
	}
	if patch.MaxSalary != nil {
		add("max_salary", *patch.MaxSalary)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE jobs SET %s WHERE id = $%d AND deleted_at IS NULL RETURNING %s`,
		strings.Join(sets, ", "), len(args), jobColumns)

	job, err := scanJob(s.on(tx).QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update job %d: %w", id, err)
	}
	return job, nil
}

// SoftDelete marks the job deleted. Already-deleted rows are untouched.
func (s *JobStore) SoftDelete(ctx context.Context, tx pgx.Tx, id int64) error {
	_, err := s.on(tx).Exec(ctx,
		`UPDATE jobs SET deleted_at = NOW(), updated_at = NOW()
		 WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("soft delete job %d: %w", id, err)
	}
	return nil
}

// FindAndCountAll returns one page of live jobs, newest first, along with
// the total live count for pagination.
func (s *JobStore) FindAndCountAll(ctx context.Context, limit, offset int) ([]model.Job, int64, error) {
	var total int64
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM jobs WHERE deleted_at IS NULL`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	rows, err := s.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs
		 WHERE deleted_at IS NULL
		 ORDER BY created_at DESC
		 LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]model.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, total, rows.Err()
}

// FindAll returns every live job, newest first.
func (s *JobStore) FindAll(ctx context.Context) ([]model.Job, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+jobColumns+` FROM jobs
		 WHERE deleted_at IS NULL
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]model.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}
