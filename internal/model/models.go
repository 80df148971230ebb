// Package model defines the data structures shared by the stores, the job
// orchestration service and the HTTP layer.
package model

import "time"

// Job mirrors a row of the jobs table. DeletedAt non-nil means the job is
// soft-deleted and invisible to every read path.
type Job struct {
	ID                int64      `json:"id"`
	TitleID           int64      `json:"titleId"`
	CompanyID         int64      `json:"companyId"`
	CityID            int64      `json:"cityId"`
	EmploymentTypeID  int64      `json:"employmentTypeId"`
	ExperienceLevelID int64      `json:"experienceLevelId"`
	Description       string     `json:"description"`
	MinSalary         *int64     `json:"minSalary"`
	MaxSalary         *int64     `json:"maxSalary"`
	DeletedAt         *time.Time `json:"deletedAt,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// NewJob carries the attributes of a job to be created.
type NewJob struct {
	TitleID           int64  `json:"titleId"`
	CompanyID         int64  `json:"companyId"`
	CityID            int64  `json:"cityId"`
	EmploymentTypeID  int64  `json:"employmentTypeId"`
	ExperienceLevelID int64  `json:"experienceLevelId"`
	Description       string `json:"description"`
	MinSalary         *int64 `json:"minSalary"`
	MaxSalary         *int64 `json:"maxSalary"`
}

// JobPatch is a partial update: nil fields are left untouched.
type JobPatch struct {
	TitleID           *int64  `json:"titleId"`
	CompanyID         *int64  `json:"companyId"`
	CityID            *int64  `json:"cityId"`
	EmploymentTypeID  *int64  `json:"employmentTypeId"`
	ExperienceLevelID *int64  `json:"experienceLevelId"`
	Description       *string `json:"description"`
	MinSalary         *int64  `json:"minSalary"`
	MaxSalary         *int64  `json:"maxSalary"`
}

// JobSkill is a row of the job_skills join table. The skill id points into
// the Skill service's namespace; there is no local skill table.
type JobSkill struct {
	JobID   int64 `json:"jobId"`
	SkillID int64 `json:"skillId"`
}

// CompanyCity records that a company has at least one job in a city.
type CompanyCity struct {
	CompanyID int64 `json:"companyId"`
	CityID    int64 `json:"cityId"`
}

// SkillRef is a resolved skill reference on the enriched detail view.
type SkillRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CityName nests the resolved city name on the enriched detail view.
type CityName struct {
	Name string `json:"name"`
}

// JobDetails is the enriched single-record read: the job plus resolved city
// and skill names. Skills is always present, even when empty.
type JobDetails struct {
	Job
	City   CityName   `json:"city"`
	Skills []SkillRef `json:"skills"`
}

// JobListItem is one record of an enriched listing. The location triple is
// flattened to top-level strings, and Skills is omitted entirely for jobs
// without skill links.
type JobListItem struct {
	Job
	City    string   `json:"city"`
	State   string   `json:"state"`
	Country string   `json:"country"`
	Skills  []string `json:"skills,omitempty"`
}

// Pagination describes one page of a listing.
type Pagination struct {
	TotalCount  int64 `json:"totalCount"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	Limit       int   `json:"limit"`
}

// JobPage is the paginated enriched listing response.
type JobPage struct {
	Records    []JobListItem `json:"records"`
	Pagination Pagination    `json:"pagination"`
}

// CreateResult is returned by a successful job creation.
type CreateResult struct {
	JobRecord *Job       `json:"jobRecord"`
	JobSkills []JobSkill `json:"jobSkills"`
}

// UpdateResult is returned by a successful job update: the patched record
// plus the caller-supplied skill id list, echoed back unvalidated.
type UpdateResult struct {
	Record   *Job    `json:"record"`
	SkillIDs []int64 `json:"skillIds"`
}

// ─── Catalog entities ────────────────────────────────────────────────────────

// JobTitle is a row of the job_titles table.
type JobTitle struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// EmploymentType is a row of the employment_types table.
type EmploymentType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ExperienceLevel is a row of the experience_levels table.
type ExperienceLevel struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	MinYears int    `json:"minYears"`
	MaxYears int    `json:"maxYears"`
}

// Company is a row of the companies table.
type Company struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Website       string `json:"website"`
	Logo          string `json:"logo"`
	Description   string `json:"description"`
	CityID        int64  `json:"cityId"`
	CompanySizeID int64  `json:"companySizeId"`
	IndustryID    int64  `json:"industryId"`
}

// Industry is a row of the industries table.
type Industry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CompanySize is a row of the company_sizes table.
type CompanySize struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
