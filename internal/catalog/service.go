// Package catalog implements the single-table reference-data surface
// around the job orchestrator: job titles, employment types, experience
// levels, companies, industries and company sizes. Writes are guarded by
// one of the two authorization policies; which one depends on the
// operation, mirroring the platform's gateway contract.
package catalog

import (
	"context"
	"log/slog"

	"jobmate/job-service/internal/apperr"
	"jobmate/job-service/internal/auth"
	"jobmate/job-service/internal/model"
)

// fail logs the cause and collapses it into the fixed caller-visible
// message. Errors already carrying a kind pass through verbatim.
func fail(msg string, err error) error {
	if apperr.IsTyped(err) {
		return err
	}
	slog.Error(msg, "err", err)
	return apperr.E(apperr.Internal, msg, err)
}

// ─── Job titles ─────────────────────────────────────────────────────────────

// JobTitles is the job title store. *store.JobTitleStore satisfies it.
type JobTitles interface {
	Create(ctx context.Context, title string) (*model.JobTitle, error)
	FindByID(ctx context.Context, id int64) (*model.JobTitle, error)
	FindByTitle(ctx context.Context, title string) (*model.JobTitle, error)
	Search(ctx context.Context, title string) ([]model.JobTitle, error)
	UpdateByID(ctx context.Context, id int64, title string) (*model.JobTitle, error)
	Delete(ctx context.Context, id int64) error
}

// JobTitleService handles job title CRUD. Create and Search are open to
// members, Update and Delete require the admin policy.
type JobTitleService struct {
	titles JobTitles
	member auth.Authorizer
	admin  auth.Authorizer
}

func NewJobTitleService(titles JobTitles, member, admin auth.Authorizer) *JobTitleService {
	return &JobTitleService{titles: titles, member: member, admin: admin}
}

func (s *JobTitleService) Create(ctx context.Context, title string, userID int64, credential string) (*model.JobTitle, error) {
	if err := s.member.Authorize(ctx, userID, credential); err != nil {
		return nil, err
	}
	existing, err := s.titles.FindByTitle(ctx, title)
	if err != nil {
		return nil, fail("Error creating job title", err)
	}
	if existing != nil {
		return nil, apperr.E(apperr.BadRequest, "Job title already exists", nil)
	}
	created, err := s.titles.Create(ctx, title)
	if err != nil {
		return nil, fail("Error creating job title", err)
	}
	return created, nil
}

func (s *JobTitleService) Search(ctx context.Context, title string, userID int64, credential string) ([]model.JobTitle, error) {
	if err := s.member.Authorize(ctx, userID, credential); err != nil {
		return nil, err
	}
	titles, err := s.titles.Search(ctx, title)
	if err != nil {
		return nil, fail("Error fetching job titles", err)
	}
	return titles, nil
}

func (s *JobTitleService) Update(ctx context.Context, id int64, title string, userID int64, credential string) (*model.JobTitle, error) {
	if err := s.admin.Authorize(ctx, userID, credential); err != nil {
		return nil, err
	}
	existing, err := s.titles.FindByID(ctx, id)
	if err != nil {
		return nil, fail("Error updating job title", err)
	}
	if existing == nil {
		return nil, apperr.E(apperr.BadRequest, "Job title does not exist", nil)
	}
	updated, err := s.titles.UpdateByID(ctx, id, title)
	if err != nil {
		return nil, fail("Error updating job title", err)
	}
	return updated, nil
}

func (s *JobTitleService) Delete(ctx context.Context, id int64, userID int64, credential string) error {
	if err := s.admin.Authorize(ctx, userID, credential); err != nil {
		return err
	}
	existing, err := s.titles.FindByID(ctx, id)
	if err != nil {
		return fail("Error deleting job title", err)
	}
	if existing == nil {
		return apperr.E(apperr.BadRequest, "Job title does not exist", nil)
	}
	if err := s.titles.Delete(ctx, id); err != nil {
		return fail("Error deleting job title", err)
	}
	return nil
}

// ─── Employment types ───────────────────────────────────────────────────────

// EmploymentTypes is the employment type store. *store.EmploymentTypeStore
// satisfies it.
type EmploymentTypes interface {
	Create(ctx context.Context, name string) (*model.EmploymentType, error)
	FindAll(ctx context.Context) ([]model.EmploymentType, error)
	UpdateByID(ctx context.Context, id int64, name string) (*model.EmploymentType, error)
	Delete(ctx context.Context, id int64) error
}

// EmploymentTypeService handles employment type CRUD. All writes require
// the admin policy; listing is open to members.
type EmploymentTypeService struct {
	types  EmploymentTypes
	member auth.Authorizer
	admin  auth.Authorizer
}

func NewEmploymentTypeService(types EmploymentTypes, member, admin auth.Authorizer) *EmploymentTypeService {
	return &EmploymentTypeService{types: types, member: member, admin: admin}
}

func (s *EmploymentTypeService) Create(ctx context.Context, name string, userID int64, credential string) (*model.EmploymentType, error) {
	if err := s.admin.Authorize(ctx, userID, credential); err != nil {
		return nil, err
	}
	created, err := s.types.Create(ctx, name)
	if err != nil {
		return nil, fail("Error creating employment type", err)
	}
	return created, nil
}

func (s *EmploymentTypeService) List(ctx context.Context, userID int64, credential string) ([]model.EmploymentType, error) {
	if err := s.member.Authorize(ctx, userID, credential); err != nil {
		return nil, err
	}
	types, err := s.types.FindAll(ctx)
	if err != nil {
		return nil, fail("Error fetching employment types", err)
	}
	return types, nil
}

func (s *EmploymentTypeService) Update(ctx context.Context, id int64, name string, userID int64, credential string) (*model.EmploymentType, error) {
	if err := s.admin.Authorize(ctx, userID, credential); err != nil {
		return nil, err
	}
	updated, err := s.types.UpdateByID(ctx, id, name)
	if err != nil {
		return nil, fail("Error updating employment type", err)
	}
	return updated, nil
}

func (s *EmploymentTypeService) Delete(ctx context.Context, id int64, userID int64, credential string) error {
	if err := s.admin.Authorize(ctx, userID, credential); err != nil {
		return err
	}
	if err := s.types.Delete(ctx, id); err != nil {
		return fail("Error deleting employment type", err)
	}
	return nil
}

// ─── Experience levels ──────────────────────────────────────────────────────

// ExperienceLevels is the experience level store. *store.ExperienceLevelStore
// satisfies it.
type ExperienceLevels interface {
	Create(ctx context.Context, name string, minYears, maxYears int) (*model.ExperienceLevel, error)
	FindByID(ctx context.Context, id int64) (*model.ExperienceLevel, error)
	FindByName(ctx context.Context, name string) (*model.ExperienceLevel, error)
	Search(ctx context.Context, name string) ([]model.ExperienceLevel, error)
	UpdateByID(ctx context.Context, id int64, name string, minYears, maxYears int) (*model.ExperienceLevel, error)
	Delete(ctx context.Context, id int64) error
}

// ExperienceLevelService handles experience level CRUD. Everything but
// Search requires the admin policy.
type ExperienceLevelService struct {
	levels ExperienceLevels
	member auth.Authorizer
	admin  auth.Authorizer
}

func NewExperienceLevelService(levels ExperienceLevels, member, admin auth.Authorizer) *ExperienceLevelService {
	return &ExperienceLevelService{levels: levels, member: member, admin: admin}
}

func (s *ExperienceLevelService) Create(ctx context.Context, name string, minYears, maxYears int, userID int64, credential string) (*model.ExperienceLevel, error) {
	if err := s.admin.Authorize(ctx, userID, credential); err != nil {
		return nil, err
	}
	existing, err := s.levels.FindByName(ctx, name)
	if err != nil {
		return nil, fail("Error creating experience level", err)
	}
	if existing != nil {
		return nil, apperr.E(apperr.BadRequest, "Experience level already exists", nil)
	}
	created, err := s.levels.Create(ctx, name, minYears, maxYears)
	if err != nil {
		return nil, fail("Error creating experience level", err)
	}
	return created, nil
}

func (s *ExperienceLevelService) Get(ctx context.Context, id int64, userID int64, credential string) (*model.ExperienceLevel, error) {
	if err := s.admin.Authorize(ctx, userID, credential); err != nil {
		return nil, err
	}
	level, err := s.levels.FindByID(ctx, id)
	if err != nil {
		return nil, fail("Error fetching experience level", err)
	}
	if level == nil {
		return nil, apperr.E(apperr.NotFound, "Experience level not found", nil)
	}
	return level, nil
}

func (s *ExperienceLevelService) Search(ctx context.Context, name string, userID int64, credential string) ([]model.ExperienceLevel, error) {
	if err := s.member.Authorize(ctx, userID, credential); err != nil {
		return nil, err
	}
	levels, err := s.levels.Search(ctx, name)
	if err != nil {
		return nil, fail("Error fetching experience levels", err)
	}
	return levels, nil
}

func (s *ExperienceLevelService) Update(ctx context.Context, id int64, name string, minYears, maxYears int, userID int64, credential string) (*model.ExperienceLevel, error) {
	if err := s.admin.Authorize(ctx, userID, credential); err != nil {
		return nil, err
	}
	existing, err := s.levels.FindByID(ctx, id)
	if err != nil {
		return nil, fail("Error updating experience level", err)
	}
	if existing == nil {
		return nil, apperr.E(apperr.BadRequest, "Experience level does not exist", nil)
	}
	updated, err := s.levels.UpdateByID(ctx, id, name, minYears, maxYears)
	if err != nil {
		return nil, fail("Error updating experience level", err)
	}
	return updated, nil
}

func (s *ExperienceLevelService) Delete(ctx context.Context, id int64, userID int64, credential string) error {
	if err := s.admin.Authorize(ctx, userID, credential); err != nil {
		return err
	}
	existing, err := s.levels.FindByID(ctx, id)
	if err != nil {
		return fail("Error deleting experience level", err)
	}
	if existing == nil {
		return apperr.E(apperr.BadRequest, "Experience level does not exist", nil)
	}
	if err := s.levels.Delete(ctx, id); err != nil {
		return fail("Error deleting experience level", err)
	}
	return nil
}
