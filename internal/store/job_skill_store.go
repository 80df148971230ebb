package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"jobmate/job-service/internal/model"
)

// JobSkillStore owns the job_skills join table. The (job_id, skill_id)
// pair is the primary key; duplicate inserts fail there, not here.
type JobSkillStore struct {
	db DB
}

// NewJobSkillStore returns a JobSkillStore running on db.
func NewJobSkillStore(db DB) *JobSkillStore {
	return &JobSkillStore{db: db}
}

func (s *JobSkillStore) on(tx pgx.Tx) DB {
	if tx != nil {
		return tx
	}
	return s.db
}

// CreateBulk links every skill id to the job in one statement and returns
// the inserted rows. Input ids are passed through as-is.
func (s *JobSkillStore) CreateBulk(ctx context.Context, tx pgx.Tx, jobID int64, skillIDs []int64) ([]model.JobSkill, error) {
	if len(skillIDs) == 0 {
		return []model.JobSkill{}, nil
	}

	rows, err := s.on(tx).Query(ctx,
		`INSERT INTO job_skills (job_id, skill_id)
		 SELECT $1, s FROM unnest($2::bigint[]) AS s
		 RETURNING job_id, skill_id`, jobID, skillIDs)
	if err != nil {
		return nil, fmt.Errorf("bulk insert job skills: %w", err)
	}
	defer rows.Close()

	links := make([]model.JobSkill, 0, len(skillIDs))
	for rows.Next() {
		var link model.JobSkill
		if err := rows.Scan(&link.JobID, &link.SkillID); err != nil {
			return nil, fmt.Errorf("scan job skill: %w", err)
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

// Create links one skill to the job.
func (s *JobSkillStore) Create(ctx context.Context, tx pgx.Tx, jobID, skillID int64) error {
	_, err := s.on(tx).Exec(ctx,
		`INSERT INTO job_skills (job_id, skill_id) VALUES ($1, $2)`, jobID, skillID)
	if err != nil {
		return fmt.Errorf("insert job skill (%d, %d): %w", jobID, skillID, err)
	}
	return nil
}

// Delete removes one (job, skill) link.
func (s *JobSkillStore) Delete(ctx context.Context, tx pgx.Tx, jobID, skillID int64) error {
	_, err := s.on(tx).Exec(ctx,
		`DELETE FROM job_skills WHERE job_id = $1 AND skill_id = $2`, jobID, skillID)
	if err != nil {
		return fmt.Errorf("delete job skill (%d, %d): %w", jobID, skillID, err)
	}
	return nil
}

// DeleteByJob removes every link of the job.
func (s *JobSkillStore) DeleteByJob(ctx context.Context, tx pgx.Tx, jobID int64) error {
	_, err := s.on(tx).Exec(ctx,
		`DELETE FROM job_skills WHERE job_id = $1`, jobID)
	if err != nil {
		return fmt.Errorf("delete job skills for job %d: %w", jobID, err)
	}
	return nil
}

// SkillIDsByJob returns the job's linked skill ids in ascending order.
func (s *JobSkillStore) SkillIDsByJob(ctx context.Context, jobID int64) ([]int64, error) {
	rows, err := s.db.Query(ctx,
		`SELECT skill_id FROM job_skills WHERE job_id = $1 ORDER BY skill_id`, jobID)
	if err != nil {
		return nil, fmt.Errorf("list skills for job %d: %w", jobID, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan skill id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
