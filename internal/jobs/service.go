// Package jobs contains the job orchestration logic: multi-table writes
// under one local transaction and multi-service read enrichment. It is
// transport-agnostic — the HTTP layer lives in handler.go.
package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"jobmate/job-service/internal/apperr"
	"jobmate/job-service/internal/auth"
	"jobmate/job-service/internal/model"
	"jobmate/job-service/internal/remote"
)

// Events published on job mutations.
const (
	EventJobCreated = "EVENT_JOB_CREATED"
	EventJobUpdated = "EVENT_JOB_UPDATED"
	EventJobDeleted = "EVENT_JOB_DELETED"
)

// ─── Dependencies ────────────────────────────────────────────────────────────

// JobRecords is the job record store. Mutations accept an optional
// transaction handle; nil means run standalone.
type JobRecords interface {
	Create(ctx context.Context, tx pgx.Tx, in model.NewJob) (*model.Job, error)
	FindByID(ctx context.Context, id int64) (*model.Job, error)
	UpdateByID(ctx context.Context, tx pgx.Tx, id int64, patch model.JobPatch) (*model.Job, error)
	SoftDelete(ctx context.Context, tx pgx.Tx, id int64) error
	FindAndCountAll(ctx context.Context, limit, offset int) ([]model.Job, int64, error)
	FindAll(ctx context.Context) ([]model.Job, error)
}

// SkillLinks is the job/skill association store.
type SkillLinks interface {
	CreateBulk(ctx context.Context, tx pgx.Tx, jobID int64, skillIDs []int64) ([]model.JobSkill, error)
	Create(ctx context.Context, tx pgx.Tx, jobID, skillID int64) error
	Delete(ctx context.Context, tx pgx.Tx, jobID, skillID int64) error
	DeleteByJob(ctx context.Context, tx pgx.Tx, jobID int64) error
	SkillIDsByJob(ctx context.Context, jobID int64) ([]int64, error)
}

// CompanyCityLinks is the company/city association store.
type CompanyCityLinks interface {
	Create(ctx context.Context, tx pgx.Tx, companyID, cityID int64) error
	Delete(ctx context.Context, tx pgx.Tx, companyID, cityID int64) error
}

// CityResolver resolves a city id to a city record.
type CityResolver interface {
	Resolve(ctx context.Context, id int64) (*remote.CityRecord, error)
}

// LocationResolver resolves a city id to a city/state/country record.
type LocationResolver interface {
	Resolve(ctx context.Context, id int64) (*remote.LocationRecord, error)
}

// SkillResolver resolves a skill id to a skill record.
type SkillResolver interface {
	Resolve(ctx context.Context, id int64) (*remote.SkillRecord, error)
}

// TxStarter opens local transactions. *pgxpool.Pool satisfies it.
type TxStarter interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Publisher emits mutation events. *redis.Client satisfies it.
type Publisher interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Deps bundles everything a Service needs.
type Deps struct {
	Tx            TxStarter
	Jobs          JobRecords
	Skills        SkillLinks
	CompanyCities CompanyCityLinks
	Cities        CityResolver
	Locations     LocationResolver
	SkillNames    SkillResolver
	Authz         auth.Authorizer
	Events        Publisher // optional; nil disables event publishing
}

// Service is the job orchestrator.
type Service struct {
	deps Deps
}

// NewService returns a configured Service.
func NewService(deps Deps) *Service {
	return &Service{deps: deps}
}

// fail logs the cause and collapses it into the fixed caller-visible
// message. Errors already carrying a kind pass through verbatim.
func fail(msg string, err error) error {
	if apperr.IsTyped(err) {
		return err
	}
	slog.Error(msg, "err", err)
	return apperr.E(apperr.Internal, msg, err)
}

// ─── Write operations ────────────────────────────────────────────────────────

// Create inserts the job record, its skill links and the company/city link
// as one unit of work. Input skill ids are not de-duplicated; the join
// table's primary key governs duplicates.
func (s *Service) Create(ctx context.Context, in model.NewJob, skillIDs []int64, userID int64, credential string) (*model.CreateResult, error) {
	if err := s.deps.Authz.Authorize(ctx, userID, credential); err != nil {
		return nil, err
	}

	tx, err := s.deps.Tx.Begin(ctx)
	if err != nil {
		return nil, fail("Error creating job", err)
	}
	defer tx.Rollback(ctx)

	job, err := s.deps.Jobs.Create(ctx, tx, in)
	if err != nil {
		return nil, fail("Error creating job", err)
	}

	links, err := s.deps.Skills.CreateBulk(ctx, tx, job.ID, skillIDs)
	if err != nil {
		return nil, fail("Error creating job", err)
	}

	if err := s.deps.CompanyCities.Create(ctx, tx, job.CompanyID, job.CityID); err != nil {
		return nil, fail("Error creating job", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fail("Error creating job", err)
	}

	s.publish(ctx, EventJobCreated, job.ID)
	return &model.CreateResult{JobRecord: job, JobSkills: links}, nil
}

// Update patches the job's own attributes and reconciles its skill links
// against the caller-supplied target set: ids missing from the current set
// are inserted, current ids missing from the target set are removed, ids
// present in both are untouched.
func (s *Service) Update(ctx context.Context, id int64, patch model.JobPatch, skillIDs []int64, userID int64, credential string) (*model.UpdateResult, error) {
	if err := s.deps.Authz.Authorize(ctx, userID, credential); err != nil {
		return nil, err
	}

	job, err := s.deps.Jobs.FindByID(ctx, id)
	if err != nil {
		return nil, fail("Error updating job details", err)
	}
	if job == nil {
		return nil, apperr.E(apperr.BadRequest, "Job does not exist", nil)
	}

	current, err := s.deps.Skills.SkillIDsByJob(ctx, job.ID)
	if err != nil {
		return nil, fail("Error updating job details", err)
	}

	currentSet := make(map[int64]bool, len(current))
	for _, skillID := range current {
		currentSet[skillID] = true
	}
	targetSet := make(map[int64]bool, len(skillIDs))
	for _, skillID := range skillIDs {
		targetSet[skillID] = true
	}

	tx, err := s.deps.Tx.Begin(ctx)
	if err != nil {
		return nil, fail("Error updating job details", err)
	}
	defer tx.Rollback(ctx)

	for _, skillID := range skillIDs {
		if !currentSet[skillID] {
			if err := s.deps.Skills.Create(ctx, tx, job.ID, skillID); err != nil {
				return nil, fail("Error updating job details", err)
			}
		}
	}
	for _, skillID := range current {
		if !targetSet[skillID] {
			if err := s.deps.Skills.Delete(ctx, tx, job.ID, skillID); err != nil {
				return nil, fail("Error updating job details", err)
			}
		}
	}

	record, err := s.deps.Jobs.UpdateByID(ctx, tx, id, patch)
	if err != nil {
		return nil, fail("Error updating job details", err)
	}
	if record == nil {
		return nil, fail("Error updating job details", errors.New("job row vanished during update"))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fail("Error updating job details", err)
	}

	s.publish(ctx, EventJobUpdated, id)
	return &model.UpdateResult{Record: record, SkillIDs: skillIDs}, nil
}

// Delete soft-deletes the job and removes its skill links and the
// company/city link of its own (company, city) pair, all in one
// transaction.
func (s *Service) Delete(ctx context.Context, id int64, userID int64, credential string) error {
	if err := s.deps.Authz.Authorize(ctx, userID, credential); err != nil {
		return err
	}

	job, err := s.deps.Jobs.FindByID(ctx, id)
	if err != nil {
		return fail("Error deleting job", err)
	}
	if job == nil {
		return apperr.E(apperr.BadRequest, "Job does not exist", nil)
	}

	tx, err := s.deps.Tx.Begin(ctx)
	if err != nil {
		return fail("Error deleting job", err)
	}
	defer tx.Rollback(ctx)

	if err := s.deps.Skills.DeleteByJob(ctx, tx, job.ID); err != nil {
		return fail("Error deleting job", err)
	}
	if err := s.deps.Jobs.SoftDelete(ctx, tx, job.ID); err != nil {
		return fail("Error deleting job", err)
	}
	if err := s.deps.CompanyCities.Delete(ctx, tx, job.CompanyID, job.CityID); err != nil {
		return fail("Error deleting job", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fail("Error deleting job", err)
	}

	s.publish(ctx, EventJobDeleted, id)
	return nil
}

// ─── Read operations ─────────────────────────────────────────────────────────

// Get returns the bare job record. No authorization on single-record reads.
func (s *Service) Get(ctx context.Context, id int64) (*model.Job, error) {
	job, err := s.deps.Jobs.FindByID(ctx, id)
	if err != nil {
		return nil, fail("Error fetching job", err)
	}
	if job == nil {
		return nil, apperr.E(apperr.NotFound, "Job not found", nil)
	}
	return job, nil
}

// GetDetails returns the job enriched with its city name and resolved
// skills. Any enrichment failure aborts the whole read; there is no
// partial response.
func (s *Service) GetDetails(ctx context.Context, id int64) (*model.JobDetails, error) {
	job, err := s.deps.Jobs.FindByID(ctx, id)
	if err != nil {
		return nil, fail("Error fetching job details", err)
	}
	if job == nil {
		return nil, apperr.E(apperr.NotFound, "Job not found", nil)
	}

	city, err := s.deps.Cities.Resolve(ctx, job.CityID)
	if err != nil {
		return nil, fail("Error fetching job details", err)
	}

	skillIDs, err := s.deps.Skills.SkillIDsByJob(ctx, job.ID)
	if err != nil {
		return nil, fail("Error fetching job details", err)
	}

	skills, err := s.resolveSkills(ctx, skillIDs)
	if err != nil {
		return nil, fail("Error fetching job details", err)
	}

	return &model.JobDetails{
		Job:    *job,
		City:   model.CityName{Name: city.Name},
		Skills: skills,
	}, nil
}

// ListPage returns one enriched page of live jobs. page and limit default
// to 1 and 10 when absent or non-positive.
func (s *Service) ListPage(ctx context.Context, page, limit int) (*model.JobPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	records, total, err := s.deps.Jobs.FindAndCountAll(ctx, limit, offset)
	if err != nil {
		return nil, fail("Error fetching paginated jobs", err)
	}

	items, err := s.enrichAll(ctx, records)
	if err != nil {
		return nil, fail("Error fetching paginated jobs", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &model.JobPage{
		Records: items,
		Pagination: model.Pagination{
			TotalCount:  total,
			TotalPages:  totalPages,
			CurrentPage: page,
			Limit:       limit,
		},
	}, nil
}

// ListAll returns every live job, enriched.
func (s *Service) ListAll(ctx context.Context) ([]model.JobListItem, error) {
	records, err := s.deps.Jobs.FindAll(ctx)
	if err != nil {
		return nil, fail("Error fetching jobs", err)
	}

	items, err := s.enrichAll(ctx, records)
	if err != nil {
		return nil, fail("Error fetching jobs", err)
	}
	return items, nil
}

// publish emits a mutation event. Failures are non-fatal and only logged.
func (s *Service) publish(ctx context.Context, channel string, jobID int64) {
	if s.deps.Events == nil {
		return
	}
	event, _ := json.Marshal(map[string]any{"type": channel, "jobId": jobID})
	if err := s.deps.Events.Publish(ctx, channel, event).Err(); err != nil {
		slog.Warn("publish failed", "channel", channel, "jobId", jobID, "err", err)
	}
}
