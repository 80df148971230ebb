// jobmate-job-service
//
// Job postings and the reference data around them. Each job record lives
// in the local PostgreSQL store while its relationships reach into the
// role, city and skill microservices. The service exposes a REST API used
// by the Gateway to implement:
//   - job CRUD with skill-set reconciliation and company-city linking
//   - enriched job reads (city, location and skill names resolved remotely)
//   - catalog CRUD: job titles, employment types, experience levels,
//     companies, industries, company sizes
//
// Publishes EVENT_JOB_CREATED / EVENT_JOB_UPDATED / EVENT_JOB_DELETED to
// Redis for Gateway SSE forward. A cron sweep purges soft-deleted jobs
// past the retention window.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobmate/job-service/internal/auth"
	"jobmate/job-service/internal/catalog"
	"jobmate/job-service/internal/config"
	"jobmate/job-service/internal/db"
	"jobmate/job-service/internal/jobs"
	"jobmate/job-service/internal/remote"
	"jobmate/job-service/internal/store"
	"jobmate/job-service/internal/sweeper"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[job-service] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	log.Println("[job-service] Connecting to PostgreSQL…")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[job-service] PostgreSQL: %v", err)
	}
	defer pool.Close()
	log.Println("[job-service] PostgreSQL connected ✓")

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Println("[job-service] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[job-service] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[job-service] Redis connected ✓")

	// ── Remote clients and authorization ─────────────────────────────────────
	roles := remote.NewRoleClient(cfg.UserServiceURL)
	cities := remote.NewCityClient(cfg.CityServiceURL)
	locations := remote.NewLocationClient(cfg.CityServiceURL)
	skills := remote.NewSkillClient(cfg.SkillServiceURL)

	member := auth.NewAllowList(roles, auth.RoleOperationsAdmin, auth.RoleAdmin)
	admin := auth.NewStrictAdmin(roles)

	// ── Services ─────────────────────────────────────────────────────────────
	jobSvc := jobs.NewService(jobs.Deps{
		Tx:            pool,
		Jobs:          store.NewJobStore(pool),
		Skills:        store.NewJobSkillStore(pool),
		CompanyCities: store.NewCompanyCityStore(pool),
		Cities:        cities,
		Locations:     locations,
		SkillNames:    skills,
		Authz:         member,
		Events:        rdb,
	})

	titleSvc := catalog.NewJobTitleService(store.NewJobTitleStore(pool), member, admin)
	typeSvc := catalog.NewEmploymentTypeService(store.NewEmploymentTypeStore(pool), member, admin)
	levelSvc := catalog.NewExperienceLevelService(store.NewExperienceLevelStore(pool), member, admin)
	companySvc := catalog.NewCompanyService(store.NewCompanyStore(pool), member, admin)
	industrySvc := catalog.NewIndustryService(store.NewIndustryStore(pool), member)
	sizeSvc := catalog.NewCompanySizeService(store.NewCompanySizeStore(pool), member)

	// ── Retention sweep ──────────────────────────────────────────────────────
	sweep := sweeper.New(pool, cfg.PurgeRetentionDays, cfg.PurgeIntervalHours)
	if err := sweep.Start(ctx); err != nil {
		log.Fatalf("[job-service] Sweeper: %v", err)
	}
	defer sweep.Stop()

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	jobs.NewHandler(jobSvc).RegisterRoutes(mux)
	catalog.NewHandler(titleSvc, typeSvc, levelSvc, companySvc, industrySvc, sizeSvc).RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[job-service] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[job-service] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[job-service] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[job-service] Shutdown error: %v", err)
	}
	log.Println("[job-service] Stopped.")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "job-service",
		"version": version,
	})
}
