package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"nginx-monitor/internal/schedulers"
	"nginx-monitor/internal/shared/validators"
)

const maxIntervalBodyBytes = 1024

// SchedulerStatusResponse is the JSON view of schedulers.Status.
type SchedulerStatusResponse struct {
	State           string     `json:"state"`
	IntervalSeconds float64    `json:"intervalSeconds"`
	LastPublishedAt *time.Time `json:"lastPublishedAt,omitempty"`
	CycleInFlight   bool       `json:"cycleInFlight"`
}

// SetIntervalRequest is the body of PUT /scheduler/interval.
type SetIntervalRequest struct {
	Seconds int `json:"seconds" validate:"required,min=1,max=3600"`
}

// SchedulerHandlers groups the scheduler control endpoints.
type SchedulerHandlers struct {
	Status      AppHttpHandler
	RefreshNow  AppHttpHandler
	Pause       AppHttpHandler
	Resume      AppHttpHandler
	SetInterval AppHttpHandler
}

type schedulerHandler struct {
	scheduler schedulers.RefreshScheduler
	validate  *validators.Validate
}

func NewSchedulerHandlers(scheduler schedulers.RefreshScheduler) SchedulerHandlers {
	h := &schedulerHandler{
		scheduler: scheduler,
		validate:  validators.New(),
	}
	return SchedulerHandlers{
		Status:      AppHttpHandlerFunc(h.handleStatus),
		RefreshNow:  AppHttpHandlerFunc(h.handleRefreshNow),
		Pause:       AppHttpHandlerFunc(h.handlePause),
		Resume:      AppHttpHandlerFunc(h.handleResume),
		SetInterval: AppHttpHandlerFunc(h.handleSetInterval),
	}
}

// handleStatus serves GET /scheduler.
func (h *schedulerHandler) handleStatus(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, newSchedulerStatusResponse(h.scheduler.Status()))
	return nil
}

// handleRefreshNow serves POST /scheduler/refresh.
func (h *schedulerHandler) handleRefreshNow(w http.ResponseWriter, r *http.Request) error {
	h.scheduler.RefreshNow()

	w.WriteHeader(http.StatusAccepted)
	return nil
}

// handlePause serves POST /scheduler/pause. Calling it twice resumes.
func (h *schedulerHandler) handlePause(w http.ResponseWriter, r *http.Request) error {
	h.scheduler.Pause()

	writeJSON(w, http.StatusOK, newSchedulerStatusResponse(h.scheduler.Status()))
	return nil
}

// handleResume serves POST /scheduler/resume.
func (h *schedulerHandler) handleResume(w http.ResponseWriter, r *http.Request) error {
	h.scheduler.Resume()

	writeJSON(w, http.StatusOK, newSchedulerStatusResponse(h.scheduler.Status()))
	return nil
}

// handleSetInterval serves PUT /scheduler/interval.
func (h *schedulerHandler) handleSetInterval(w http.ResponseWriter, r *http.Request) error {
	var req SetIntervalRequest
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxIntervalBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		return errInvalidInterval("invalid json body", err)
	}

	if err := h.validate.Struct(req); err != nil {
		return errInvalidInterval(fmt.Sprintf("seconds must be between 1 and 3600, got %d", req.Seconds), err)
	}

	if err := h.scheduler.SetInterval(time.Duration(req.Seconds) * time.Second); err != nil {
		return errInternalSetIntervalFailed(err)
	}

	writeJSON(w, http.StatusOK, newSchedulerStatusResponse(h.scheduler.Status()))
	return nil
}

func newSchedulerStatusResponse(status schedulers.Status) SchedulerStatusResponse {
	resp := SchedulerStatusResponse{
		State:           string(status.State),
		IntervalSeconds: status.Interval.Seconds(),
		CycleInFlight:   status.CycleInFlight,
	}
	if !status.LastPublishedAt.IsZero() {
		lastPublishedAt := status.LastPublishedAt.UTC()
		resp.LastPublishedAt = &lastPublishedAt
	}
	return resp
}
