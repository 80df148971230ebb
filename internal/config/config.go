// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is missing, the process exits with an error.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all runtime configuration for the job service.
type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string

	// Base URLs of the remote microservices this service fans out to.
	UserServiceURL  string // role resolution
	CityServiceURL  string // city + location lookups
	SkillServiceURL string

	// Retention sweep for soft-deleted jobs.
	PurgeRetentionDays int
	PurgeIntervalHours int
}

// Load reads environment variables and returns a validated Config.
func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisURL:           os.Getenv("REDIS_URL"),
		UserServiceURL:     os.Getenv("USER_SERVICE_URL"),
		CityServiceURL:     os.Getenv("CITY_SERVICE_URL"),
		SkillServiceURL:    os.Getenv("SKILL_SERVICE_URL"),
		PurgeRetentionDays: 30,
		PurgeIntervalHours: 24,
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.RedisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}
	if cfg.UserServiceURL == "" {
		return nil, fmt.Errorf("USER_SERVICE_URL is required")
	}
	if cfg.CityServiceURL == "" {
		return nil, fmt.Errorf("CITY_SERVICE_URL is required")
	}
	if cfg.SkillServiceURL == "" {
		return nil, fmt.Errorf("SKILL_SERVICE_URL is required")
	}

	cfg.Port = os.Getenv("JOB_PORT")
	if cfg.Port == "" {
		cfg.Port = "8083"
	}

	if s := os.Getenv("PURGE_RETENTION_DAYS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("PURGE_RETENTION_DAYS must be a positive integer, got %q", s)
		}
		cfg.PurgeRetentionDays = v
	}

	if s := os.Getenv("PURGE_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("PURGE_INTERVAL_HOURS must be a positive integer, got %q", s)
		}
		cfg.PurgeIntervalHours = v
	}

	return cfg, nil
}
