// HTTP handlers for the job orchestration service.
//
// The gateway forwards the caller's identity in the x-user-id header and
// the credential token verbatim in Authorization.
//
// Routes:
//
//	POST   /jobs          → create job (job attributes + skillIds)
//	GET    /jobs          → paginated enriched listing (?page=&limit=)
//	GET    /jobs/all      → full enriched listing
//	GET    /jobs/{id}     → enriched single record
//	GET    /jobs/{id}/record → bare record, no enrichment
//	PUT    /jobs/{id}     → patch attributes + reconcile skill set
//	DELETE /jobs/{id}     → soft delete
package jobs

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"jobmate/job-service/internal/apperr"
	"jobmate/job-service/internal/model"
)

// Handler exposes the Service over HTTP.
type Handler struct {
	svc *Service
}

// NewHandler returns a configured Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts all job routes on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/jobs", h.handleJobs)
	mux.HandleFunc("/jobs/", h.handleJobPath)
}

// ─── Route dispatch ───────────────────────────────────────────────────────────

func (h *Handler) handleJobs(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listJobs(w, r)
	case http.MethodPost:
		h.createJob(w, r)
	default:
		writeFailure(w, apperr.E(apperr.BadRequest, "method not allowed", nil))
	}
}

func (h *Handler) handleJobPath(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/jobs/"), "/")

	if rest == "all" {
		if r.Method != http.MethodGet {
			writeFailure(w, apperr.E(apperr.BadRequest, "method not allowed", nil))
			return
		}
		h.listAllJobs(w, r)
		return
	}

	segment, tail, _ := strings.Cut(rest, "/")
	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil {
		writeFailure(w, apperr.E(apperr.BadRequest, "invalid job id", err))
		return
	}

	// /jobs/{id}/record serves the bare row without enrichment.
	if tail == "record" {
		if r.Method != http.MethodGet {
			writeFailure(w, apperr.E(apperr.BadRequest, "method not allowed", nil))
			return
		}
		h.getJob(w, r, id)
		return
	}
	if tail != "" {
		writeFailure(w, apperr.E(apperr.BadRequest, "invalid job id", nil))
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.getJobDetails(w, r, id)
	case http.MethodPut:
		h.updateJob(w, r, id)
	case http.MethodDelete:
		h.deleteJob(w, r, id)
	default:
		writeFailure(w, apperr.E(apperr.BadRequest, "method not allowed", nil))
	}
}

// ─── Individual handlers ──────────────────────────────────────────────────────

type createJobRequest struct {
	model.NewJob
	SkillIDs []int64 `json:"skillIds"`
}

func (h *Handler) createJob(w http.ResponseWriter, r *http.Request) {
	userID, credential, err := callerIdentity(r)
	if err != nil {
		writeFailure(w, err)
		return
	}

	var body createJobRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFailure(w, apperr.E(apperr.BadRequest, "invalid JSON body", err))
		return
	}

	result, err := h.svc.Create(r.Context(), body.NewJob, body.SkillIDs, userID, credential)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, "Job created successfully", result)
}

func (h *Handler) listJobs(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	pageResult, err := h.svc.ListPage(r.Context(), page, limit)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, "Jobs fetched successfully", pageResult)
}

func (h *Handler) listAllJobs(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListAll(r.Context())
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, "Jobs fetched successfully", items)
}

func (h *Handler) getJob(w http.ResponseWriter, r *http.Request, id int64) {
	job, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, "Job fetched successfully", job)
}

func (h *Handler) getJobDetails(w http.ResponseWriter, r *http.Request, id int64) {
	details, err := h.svc.GetDetails(r.Context(), id)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, "Job fetched successfully", details)
}

type updateJobRequest struct {
	model.JobPatch
	SkillIDs []int64 `json:"skillIds"`
}

func (h *Handler) updateJob(w http.ResponseWriter, r *http.Request, id int64) {
	userID, credential, err := callerIdentity(r)
	if err != nil {
		writeFailure(w, err)
		return
	}

	var body updateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeFailure(w, apperr.E(apperr.BadRequest, "invalid JSON body", err))
		return
	}

	result, err := h.svc.Update(r.Context(), id, body.JobPatch, body.SkillIDs, userID, credential)
	if err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, "Job updated successfully", result)
}

func (h *Handler) deleteJob(w http.ResponseWriter, r *http.Request, id int64) {
	userID, credential, err := callerIdentity(r)
	if err != nil {
		writeFailure(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id, userID, credential); err != nil {
		writeFailure(w, err)
		return
	}
	writeSuccess(w, "Job deleted successfully", true)
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

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

// envelope is the uniform response shape shared with the other services.
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
