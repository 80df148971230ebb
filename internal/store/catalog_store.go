package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"jobmate/job-service/internal/model"
)

// The catalog stores back the single-table CRUD surface around the job
// orchestrator. None of their operations span tables, so none take a
// transaction handle.

// ── Job titles ─────────────────────────────────────────────────────────────

type JobTitleStore struct {
	db DB
}

func NewJobTitleStore(db DB) *JobTitleStore { return &JobTitleStore{db: db} }

func (s *JobTitleStore) Create(ctx context.Context, title string) (*model.JobTitle, error) {
	var t model.JobTitle
	err := s.db.QueryRow(ctx,
		`INSERT INTO job_titles (title) VALUES ($1) RETURNING id, title`,
		title).Scan(&t.ID, &t.Title)
	if err != nil {
		return nil, fmt.Errorf("insert job title: %w", err)
	}
	return &t, nil
}

func (s *JobTitleStore) FindByID(ctx context.Context, id int64) (*model.JobTitle, error) {
	var t model.JobTitle
	err := s.db.QueryRow(ctx,
		`SELECT id, title FROM job_titles WHERE id = $1`, id).Scan(&t.ID, &t.Title)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find job title %d: %w", id, err)
	}
	return &t, nil
}

func (s *JobTitleStore) FindByTitle(ctx context.Context, title string) (*model.JobTitle, error) {
	var t model.JobTitle
	err := s.db.QueryRow(ctx,
		`SELECT id, title FROM job_titles WHERE title = $1`, title).Scan(&t.ID, &t.Title)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find job title %q: %w", title, err)
	}
	return &t, nil
}

func (s *JobTitleStore) Search(ctx context.Context, title string) ([]model.JobTitle, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, title FROM job_titles WHERE title ILIKE '%' || $1 || '%' ORDER BY title`,
		title)
	if err != nil {
		return nil, fmt.Errorf("search job titles: %w", err)
	}
	defer rows.Close()

	titles := make([]model.JobTitle, 0)
	for rows.Next() {
		var t model.JobTitle
		if err := rows.Scan(&t.ID, &t.Title); err != nil {
			return nil, fmt.Errorf("scan job title: %w", err)
		}
		titles = append(titles, t)
	}
	return titles, rows.Err()
}

func (s *JobTitleStore) UpdateByID(ctx context.Context, id int64, title string) (*model.JobTitle, error) {
	var t model.JobTitle
	err := s.db.QueryRow(ctx,
		`UPDATE job_titles SET title = $1 WHERE id = $2 RETURNING id, title`,
		title, id).Scan(&t.ID, &t.Title)
	if err != nil {
		return nil, fmt.Errorf("update job title %d: %w", id, err)
	}
	return &t, nil
}

func (s *JobTitleStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM job_titles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job title %d: %w", id, err)
	}
	return nil
}

// ── Employment types ───────────────────────────────────────────────────────

type EmploymentTypeStore struct {
	db DB
}

func NewEmploymentTypeStore(db DB) *EmploymentTypeStore { return &EmploymentTypeStore{db: db} }

func (s *EmploymentTypeStore) Create(ctx context.Context, name string) (*model.EmploymentType, error) {
	var e model.EmploymentType
	err := s.db.QueryRow(ctx,
		`INSERT INTO employment_types (name) VALUES ($1) RETURNING id, name`,
		name).Scan(&e.ID, &e.Name)
	if err != nil {
		return nil, fmt.Errorf("insert employment type: %w", err)
	}
	return &e, nil
}

func (s *EmploymentTypeStore) FindAll(ctx context.Context) ([]model.EmploymentType, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name FROM employment_types ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list employment types: %w", err)
	}
	defer rows.Close()

	types := make([]model.EmploymentType, 0)
	for rows.Next() {
		var e model.EmploymentType
		if err := rows.Scan(&e.ID, &e.Name); err != nil {
			return nil, fmt.Errorf("scan employment type: %w", err)
		}
		types = append(types, e)
	}
	return types, rows.Err()
}

func (s *EmploymentTypeStore) UpdateByID(ctx context.Context, id int64, name string) (*model.EmploymentType, error) {
	var e model.EmploymentType
	err := s.db.QueryRow(ctx,
		`UPDATE employment_types SET name = $1 WHERE id = $2 RETURNING id, name`,
		name, id).Scan(&e.ID, &e.Name)
	if err != nil {
		return nil, fmt.Errorf("update employment type %d: %w", id, err)
	}
	return &e, nil
}

func (s *EmploymentTypeStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM employment_types WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employment type %d: %w", id, err)
	}
	return nil
}

// ── Experience levels ──────────────────────────────────────────────────────

type ExperienceLevelStore struct {
	db DB
}

func NewExperienceLevelStore(db DB) *ExperienceLevelStore { return &ExperienceLevelStore{db: db} }

func (s *ExperienceLevelStore) Create(ctx context.Context, name string, minYears, maxYears int) (*model.ExperienceLevel, error) {
	var e model.ExperienceLevel
	err := s.db.QueryRow(ctx,
		`INSERT INTO experience_levels (name, min_years, max_years)
		 VALUES ($1, $2, $3) RETURNING id, name, min_years, max_years`,
		name, minYears, maxYears).Scan(&e.ID, &e.Name, &e.MinYears, &e.MaxYears)
	if err != nil {
		return nil, fmt.Errorf("insert experience level: %w", err)
	}
	return &e, nil
}

func (s *ExperienceLevelStore) FindByID(ctx context.Context, id int64) (*model.ExperienceLevel, error) {
	var e model.ExperienceLevel
	err := s.db.QueryRow(ctx,
		`SELECT id, name, min_years, max_years FROM experience_levels WHERE id = $1`,
		id).Scan(&e.ID, &e.Name, &e.MinYears, &e.MaxYears)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find experience level %d: %w", id, err)
	}
	return &e, nil
}

func (s *ExperienceLevelStore) FindByName(ctx context.Context, name string) (*model.ExperienceLevel, error) {
	var e model.ExperienceLevel
	err := s.db.QueryRow(ctx,
		`SELECT id, name, min_years, max_years FROM experience_levels WHERE name = $1`,
		name).Scan(&e.ID, &e.Name, &e.MinYears, &e.MaxYears)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find experience level %q: %w", name, err)
	}
	return &e, nil
}

func (s *ExperienceLevelStore) Search(ctx context.Context, name string) ([]model.ExperienceLevel, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, min_years, max_years FROM experience_levels
		 WHERE name ILIKE '%' || $1 || '%' ORDER BY min_years`, name)
	if err != nil {
		return nil, fmt.Errorf("search experience levels: %w", err)
	}
	defer rows.Close()

	levels := make([]model.ExperienceLevel, 0)
	for rows.Next() {
		var e model.ExperienceLevel
		if err := rows.Scan(&e.ID, &e.Name, &e.MinYears, &e.MaxYears); err != nil {
			return nil, fmt.Errorf("scan experience level: %w", err)
		}
		levels = append(levels, e)
	}
	return levels, rows.Err()
}

func (s *ExperienceLevelStore) UpdateByID(ctx context.Context, id int64, name string, minYears, maxYears int) (*model.ExperienceLevel, error) {
	var e model.ExperienceLevel
	err := s.db.QueryRow(ctx,
		`UPDATE experience_levels SET name = $1, min_years = $2, max_years = $3
		 WHERE id = $4 RETURNING id, name, min_years, max_years`,
		name, minYears, maxYears, id).Scan(&e.ID, &e.Name, &e.MinYears, &e.MaxYears)
	if err != nil {
		return nil, fmt.Errorf("update experience level %d: %w", id, err)
	}
	return &e, nil
}

func (s *ExperienceLevelStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM experience_levels WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete experience level %d: %w", id, err)
	}
	return nil
}

// ── Companies ──────────────────────────────────────────────────────────────

const companyColumns = `id, name, website, logo, description, city_id, company_size_id, industry_id`

type CompanyStore struct {
	db DB
}

func NewCompanyStore(db DB) *CompanyStore { return &CompanyStore{db: db} }

func scanCompany(row pgx.Row) (*model.Company, error) {
	var c model.Company
	err := row.Scan(&c.ID, &c.Name, &c.Website, &c.Logo, &c.Description,
		&c.CityID, &c.CompanySizeID, &c.IndustryID)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *CompanyStore) Create(ctx context.Context, in model.Company) (*model.Company, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO companies (name, website, logo, description, city_id, company_size_id, industry_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+companyColumns,
		in.Name, in.Website, in.Logo, in.Description, in.CityID, in.CompanySizeID, in.IndustryID)
	company, err := scanCompany(row)
	if err != nil {
		return nil, fmt.Errorf("insert company: %w", err)
	}
	return company, nil
}

func (s *CompanyStore) FindByID(ctx context.Context, id int64) (*model.Company, error) {
	company, err := scanCompany(s.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find company %d: %w", id, err)
	}
	return company, nil
}

func (s *CompanyStore) FindByName(ctx context.Context, name string) (*model.Company, error) {
	company, err := scanCompany(s.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE name = $1`, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find company %q: %w", name, err)
	}
	return company, nil
}

func (s *CompanyStore) Search(ctx context.Context, name string) ([]model.Company, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+companyColumns+` FROM companies
		 WHERE name ILIKE '%' || $1 || '%' ORDER BY name`, name)
	if err != nil {
		return nil, fmt.Errorf("search companies: %w", err)
	}
	defer rows.Close()

	companies := make([]model.Company, 0)
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		companies = append(companies, *company)
	}
	return companies, rows.Err()
}

func (s *CompanyStore) UpdateByID(ctx context.Context, id int64, in model.Company) (*model.Company, error) {
	row := s.db.QueryRow(ctx,
		`UPDATE companies
		 SET name = $1, website = $2, logo = $3, description = $4,
		     city_id = $5, company_size_id = $6, industry_id = $7
		 WHERE id = $8
		 RETURNING `+companyColumns,
		in.Name, in.Website, in.Logo, in.Description, in.CityID,
		in.CompanySizeID, in.IndustryID, id)
	company, err := scanCompany(row)
	if err != nil {
		return nil, fmt.Errorf("update company %d: %w", id, err)
	}
	return company, nil
}

func (s *CompanyStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company %d: %w", id, err)
	}
	return nil
}

// ── Industries ─────────────────────────────────────────────────────────────

type IndustryStore struct {
	db DB
}

func NewIndustryStore(db DB) *IndustryStore { return &IndustryStore{db: db} }

func (s *IndustryStore) Search(ctx context.Context, name string) ([]model.Industry, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name FROM industries WHERE name ILIKE '%' || $1 || '%' ORDER BY name`,
		name)
	if err != nil {
		return nil, fmt.Errorf("search industries: %w", err)
	}
	defer rows.Close()

	industries := make([]model.Industry, 0)
	for rows.Next() {
		var i model.Industry
		if err := rows.Scan(&i.ID, &i.Name); err != nil {
			return nil, fmt.Errorf("scan industry: %w", err)
		}
		industries = append(industries, i)
	}
	return industries, rows.Err()
}

// ── Company sizes ──────────────────────────────────────────────────────────

type CompanySizeStore struct {
	db DB
}

func NewCompanySizeStore(db DB) *CompanySizeStore { return &CompanySizeStore{db: db} }

func (s *CompanySizeStore) FindAll(ctx context.Context) ([]model.CompanySize, error) {
	rows, err := s.db.Query(ctx, `SELECT id, name FROM company_sizes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list company sizes: %w", err)
	}
	defer rows.Close()

	sizes := make([]model.CompanySize, 0)
	for rows.Next() {
		var cs model.CompanySize
		if err := rows.Scan(&cs.ID, &cs.Name); err != nil {
			return nil, fmt.Errorf("scan company size: %w", err)
		}
		sizes = append(sizes, cs)
	}
	return sizes, rows.Err()
}
