// Package sweeper wires up the cron job that permanently purges jobs whose
// soft delete has aged past the retention window.
package sweeper

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
)

// Sweeper wraps robfig/cron and manages the purge loop.
type Sweeper struct {
	cron          *cron.Cron
	pool          *pgxpool.Pool
	retentionDays int
	spec          string // cron spec, e.g. "@every 24h"
}

// New creates a Sweeper that fires every intervalHours hours and purges
// jobs soft-deleted more than retentionDays ago.
func New(pool *pgxpool.Pool, retentionDays, intervalHours int) *Sweeper {
	return &Sweeper{
		cron:          cron.New(cron.WithLogger(cron.DefaultLogger)),
		pool:          pool,
		retentionDays: retentionDays,
		spec:          fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the job and starts the scheduler. Also runs one purge
// immediately so a long-stopped service catches up without waiting for
// the first tick.
func (s *Sweeper) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runPurge(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[sweeper] Cron started, spec: %s", s.spec)

	// Run immediately on startup (non-blocking)
	go s.runPurge(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Sweeper) Stop() {
	s.cron.Stop()
	log.Println("[sweeper] Cron stopped")
}

// runPurge removes skill links first so the final jobs delete never leaves
// orphaned link rows, then drops the expired job records themselves.
func (s *Sweeper) runPurge(ctx context.Context) {
	log.Println("[sweeper] Purge cycle started")

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		log.Printf("[sweeper] Begin error: %v", err)
		return
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM job_skills
		 WHERE job_id IN (
		   SELECT id FROM jobs
		   WHERE deleted_at IS NOT NULL
		     AND deleted_at < NOW() - make_interval(days => $1)
		 )`, s.retentionDays)
	if err != nil {
		log.Printf("[sweeper] Purge skill links error: %v", err)
		return
	}

	tag, err := tx.Exec(ctx,
		`DELETE FROM jobs
		 WHERE deleted_at IS NOT NULL
		   AND deleted_at < NOW() - make_interval(days => $1)`, s.retentionDays)
	if err != nil {
		log.Printf("[sweeper] Purge jobs error: %v", err)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		log.Printf("[sweeper] Commit error: %v", err)
		return
	}

	log.Printf("[sweeper] Purge cycle complete, %d job(s) removed", tag.RowsAffected())
}
