// HTTP handlers for the catalog surface.
//
// Routes:
//
//	POST   /job-titles             → create job title
//	GET    /job-titles?title=      → search job titles
//	PUT    /job-titles/{id}        → rename job title (admin)
//	DELETE /job-titles/{id}        → delete job title (admin)
//	POST   /employment-types       → create employment type (admin)
//	GET    /employment-types       → list employment types
//	PUT    /employment-types/{id}  → rename employment type (admin)
//	DELETE /employment-types/{id}  → delete employment type (admin)
//	POST   /experience-levels      → create experience level (admin)
//	GET    /experience-levels      → search experience levels (?name=)
//	GET    /experience-levels/{id} → fetch experience level (admin)
//	PUT    /experience-levels/{id} → update experience level (admin)
//	DELETE /experience-levels/{id} → delete experience level (admin)
//	POST   /companies              → create company
//	GET    /companies?name=        → search companies
//	GET    /companies/{id}         → fetch company (public)
//	PUT    /companies/{id}         → update company (admin)
//	DELETE /companies/{id}         → delete company (admin)
//	GET    /industries?name=       → search industries
//	GET    /company-sizes          → list company sizes
package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"jobmate/job-service/internal/apperr"
	"jobmate/job-service/internal/model"
)

// Handler exposes the catalog services over HTTP.
type Handler struct {
	titles     *JobTitleService
	types      *EmploymentTypeService
	levels     *ExperienceLevelService
	companies  *CompanyService
	industries *IndustryService
	sizes      *CompanySizeService
}

// NewHandler returns a configured Handler.
func NewHandler(
	titles *JobTitleService,
	types *EmploymentTypeService,
	levels *ExperienceLevelService,
	companies *CompanyService,
	industries *IndustryService,
	sizes *CompanySizeService,
) *Handler {
	return &Handler{
		titles: titles, types: types, levels: levels,
		companies: companies, industries: industries, sizes: sizes,
	}
}

// RegisterRoutes mounts all catalog routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/job-titles", h.handleJobTitles)
	mux.HandleFunc("/job-titles/", h.handleJobTitlePath)
	mux.HandleFunc("/employment-types", h.handleEmploymentTypes)
	mux.HandleFunc("/employment-types/", h.handleEmploymentTypePath)
	mux.HandleFunc("/experience-levels", h.handleExperienceLevels)
	mux.HandleFunc("/experience-levels/", h.handleExperienceLevelPath)
	mux.HandleFunc("/companies", h.handleCompanies)
	mux.HandleFunc("/companies/", h.handleCompanyPath)
	mux.HandleFunc("/industries", h.handleIndustries)
	mux.HandleFunc("/company-sizes", h.handleCompanySizes)
}

// pathID parses the trailing id segment after prefix.
func pathID(r *http.Request, prefix string) (int64, error) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/")
	id, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, apperr.E(apperr.BadRequest, "invalid id", err)
	}
	return id, nil
}

// ─── Job titles ─────────────────────────────────────────────────────────────

type jobTitleRequest struct {
	Title string `json:"title"`
}

func (h *Handler) handleJobTitles(w http.ResponseWriter, r *http.Request) {
	userID, credential, err := callerIdentity(r)
	if err != nil {
		writeFailure(w, err)
		return
	}

	switch r.Method {
	case http.MethodPost:
		var body jobTitleRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeFailure(w, apperr.E(apperr.BadRequest, "invalid JSON body", err))
			return
		}
		created, err := h.titles.Create(r.Context(), body.Title, userID, credential)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Job title created successfully", created)
	case http.MethodGet:
		titles, err := h.titles.Search(r.Context(), r.URL.Query().Get("title"), userID, credential)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Job titles fetched successfully", titles)
	default:
		writeFailure(w, apperr.E(apperr.BadRequest, "method not allowed", nil))
	}
}

func (h *Handler) handleJobTitlePath(w http.ResponseWriter, r *http.Request) {
	userID, credential, err := callerIdentity(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	id, err := pathID(r, "/job-titles/")
	if err != nil {
		writeFailure(w, err)
		return
	}

	switch r.Method {
	case http.MethodPut:
		var body jobTitleRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeFailure(w, apperr.E(apperr.BadRequest, "invalid JSON body", err))
			return
		}
		updated, err := h.titles.Update(r.Context(), id, body.Title, userID, credential)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Job title updated successfully", updated)
	case http.MethodDelete:
		if err := h.titles.Delete(r.Context(), id, userID, credential); err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Job title deleted successfully", true)
	default:
		writeFailure(w, apperr.E(apperr.BadRequest, "method not allowed", nil))
	}
}

// ─── Employment types ───────────────────────────────────────────────────────

type employmentTypeRequest struct {
	Name string `json:"name"`
}

func (h *Handler) handleEmploymentTypes(w http.ResponseWriter, r *http.Request) {
	userID, credential, err := callerIdentity(r)
	if err != nil {
		writeFailure(w, err)
		return
	}

	switch r.Method {
	case http.MethodPost:
		var body employmentTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeFailure(w, apperr.E(apperr.BadRequest, "invalid JSON body", err))
			return
		}
		created, err := h.types.Create(r.Context(), body.Name, userID, credential)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Employment type created successfully", created)
	case http.MethodGet:
		types, err := h.types.List(r.Context(), userID, credential)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Employment types fetched successfully", types)
	default:
		writeFailure(w, apperr.E(apperr.BadRequest, "method not allowed", nil))
	}
}

func (h *Handler) handleEmploymentTypePath(w http.ResponseWriter, r *http.Request) {
	userID, credential, err := callerIdentity(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	id, err := pathID(r, "/employment-types/")
	if err != nil {
		writeFailure(w, err)
		return
	}

	switch r.Method {
	case http.MethodPut:
		var body employmentTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeFailure(w, apperr.E(apperr.BadRequest, "invalid JSON body", err))
			return
		}
		updated, err := h.types.Update(r.Context(), id, body.Name, userID, credential)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Employment type updated successfully", updated)
	case http.MethodDelete:
		if err := h.types.Delete(r.Context(), id, userID, credential); err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Employment type deleted successfully", true)
	default:
		writeFailure(w, apperr.E(apperr.BadRequest, "method not allowed", nil))
	}
}

// ─── Experience levels ──────────────────────────────────────────────────────

type experienceLevelRequest struct {
	Name     string `json:"name"`
	MinYears int    `json:"minYears"`
	MaxYears int    `json:"maxYears"`
}

func (h *Handler) handleExperienceLevels(w http.ResponseWriter, r *http.Request) {
	userID, credential, err := callerIdentity(r)
	if err != nil {
		writeFailure(w, err)
		return
	}

	switch r.Method {
	case http.MethodPost:
		var body experienceLevelRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeFailure(w, apperr.E(apperr.BadRequest, "invalid JSON body", err))
			return
		}
		created, err := h.levels.Create(r.Context(), body.Name, body.MinYears, body.MaxYears, userID, credential)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Experience level created successfully", created)
	case http.MethodGet:
		levels, err := h.levels.Search(r.Context(), r.URL.Query().Get("name"), userID, credential)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Experience levels fetched successfully", levels)
	default:
		writeFailure(w, apperr.E(apperr.BadRequest, "method not allowed", nil))
	}
}

func (h *Handler) handleExperienceLevelPath(w http.ResponseWriter, r *http.Request) {
	userID, credential, err := callerIdentity(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	id, err := pathID(r, "/experience-levels/")
	if err != nil {
		writeFailure(w, err)
		return
	}

	switch r.Method {
	case http.MethodGet:
		level, err := h.levels.Get(r.Context(), id, userID, credential)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Experience level fetched successfully", level)
	case http.MethodPut:
		var body experienceLevelRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeFailure(w, apperr.E(apperr.BadRequest, "invalid JSON body", err))
			return
		}
		updated, err := h.levels.Update(r.Context(), id, body.Name, body.MinYears, body.MaxYears, userID, credential)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Experience level updated successfully", updated)
	case http.MethodDelete:
		if err := h.levels.Delete(r.Context(), id, userID, credential); err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Experience level deleted successfully", true)
	default:
		writeFailure(w, apperr.E(apperr.BadRequest, "method not allowed", nil))
	}
}

// ─── Companies ──────────────────────────────────────────────────────────────

func (h *Handler) handleCompanies(w http.ResponseWriter, r *http.Request) {
	userID, credential, err := callerIdentity(r)
	if err != nil {
		writeFailure(w, err)
		return
	}

	switch r.Method {
	case http.MethodPost:
		var body model.Company
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeFailure(w, apperr.E(apperr.BadRequest, "invalid JSON body", err))
			return
		}
		created, err := h.companies.Create(r.Context(), body, userID, credential)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Company created successfully", created)
	case http.MethodGet:
		companies, err := h.companies.Search(r.Context(), r.URL.Query().Get("name"), userID, credential)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Companies fetched successfully", companies)
	default:
		writeFailure(w, apperr.E(apperr.BadRequest, "method not allowed", nil))
	}
}

func (h *Handler) handleCompanyPath(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "/companies/")
	if err != nil {
		writeFailure(w, err)
		return
	}

	// Company profiles are public; only mutations need an identity.
	if r.Method == http.MethodGet {
		company, err := h.companies.Get(r.Context(), id)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Company fetched successfully", company)
		return
	}

	userID, credential, err := callerIdentity(r)
	if err != nil {
		writeFailure(w, err)
		return
	}

	switch r.Method {
	case http.MethodPut:
		var body model.Company
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeFailure(w, apperr.E(apperr.BadRequest, "invalid JSON body", err))
			return
		}
		updated, err := h.companies.Update(r.Context(), id, body, userID, credential)
		if err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Company updated successfully", updated)
	case http.MethodDelete:
		if err := h.companies.Delete(r.Context(), id, userID, credential); err != nil {
			writeFailure(w, err)
			return
		}
		writeSuccess(w, "Company deleted successfully", true)
	default:
		writeFailure(w, apperr.E(apperr.BadRequest, "method not allowed", nil))
	}
}

// ─── Industries and company sizes ───────────────────────────────────────────

func (h *Handler) handleIndustries(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeFailure(w, apperr.E(apperr.BadRequest, "method not allowed", nil))
		return
	}
	userID, credential, err := callerIdentity(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	industries, err := h.industries.Search(r.Context(), r.URL.Query().Get("name"), userID, credential)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, "Industries fetched successfully", industries)
}

func (h *Handler) handleCompanySizes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeFailure(w, apperr.E(apperr.BadRequest, "method not allowed", nil))
		return
	}
	userID, credential, err := callerIdentity(r)
	if err != nil {
		writeFailure(w, err)
		return
	}
	sizes, err := h.sizes.List(r.Context(), userID, credential)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, "Company sizes fetched successfully", sizes)
}

// ─── Helpers ────────────────────────────────────────────────────────────────

// callerIdentity extracts the forwarded user id and credential token.
func callerIdentity(r *http.Request) (int64, string, error) {
	raw := r.Header.Get("x-user-id")
	if raw == "" {
		return 0, "", apperr.E(apperr.Unauthorized, "missing x-user-id header", nil)
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, "", apperr.E(apperr.Unauthorized, "invalid x-user-id header", err)
	}
	return userID, r.Header.Get("Authorization"), nil
}

type envelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    any            `json:"data"`
	Error   map[string]any `json:"error"`
}

func writeSuccess(w http.ResponseWriter, msg string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(envelope{
		Success: true,
		Message: msg,
		Data:    data,
		Error:   map[string]any{},
	})
}

func writeFailure(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.BadRequest:
		status = http.StatusBadRequest
	case apperr.Unauthorized:
		status = http.StatusUnauthorized
	case apperr.NotFound:
		status = http.StatusNotFound
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{
		Success: false,
		Message: apperr.Message(err),
		Data:    nil,
		Error:   map[string]any{},
	})
}
