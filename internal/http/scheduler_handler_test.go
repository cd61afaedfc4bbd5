package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"nginx-monitor/internal/schedulers"
	schedulermocks "nginx-monitor/internal/schedulers/mocks"
	"nginx-monitor/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func decodeStatus(t *testing.T, rr *httptest.ResponseRecorder) SchedulerStatusResponse {
	t.Helper()

	var resp SchedulerStatusResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}

func TestSchedulerHandlers_Status(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	scheduler := schedulermocks.NewMockRefreshScheduler(ctrl)
	publishedAt := time.Date(2024, 10, 10, 14, 0, 2, 0, time.UTC)
	scheduler.EXPECT().Status().Return(schedulers.Status{
		State:           schedulers.StateRunning,
		Interval:        2 * time.Second,
		LastPublishedAt: publishedAt,
	})

	rr := httptest.NewRecorder()
	err := NewSchedulerHandlers(scheduler).Status.Handle(rr, httptest.NewRequest(http.MethodGet, "/scheduler", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rr.Code)

	resp := decodeStatus(t, rr)
	assert.Equal(t, "RUNNING", resp.State)
	assert.Equal(t, float64(2), resp.IntervalSeconds)
	require.NotNil(t, resp.LastPublishedAt)
	assert.True(t, publishedAt.Equal(*resp.LastPublishedAt))
	assert.False(t, resp.CycleInFlight)
}

func TestSchedulerHandlers_Status_NeverPublished(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	scheduler := schedulermocks.NewMockRefreshScheduler(ctrl)
	scheduler.EXPECT().Status().Return(schedulers.Status{State: schedulers.StatePaused, Interval: time.Second, CycleInFlight: true})

	rr := httptest.NewRecorder()
	require.NoError(t, NewSchedulerHandlers(scheduler).Status.Handle(rr, httptest.NewRequest(http.MethodGet, "/scheduler", nil)))

	assert.NotContains(t, rr.Body.String(), "lastPublishedAt")
	resp := decodeStatus(t, rr)
	assert.Equal(t, "PAUSED", resp.State)
	assert.True(t, resp.CycleInFlight)
}

func TestSchedulerHandlers_RefreshNow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	scheduler := schedulermocks.NewMockRefreshScheduler(ctrl)
	scheduler.EXPECT().RefreshNow()

	rr := httptest.NewRecorder()
	err := NewSchedulerHandlers(scheduler).RefreshNow.Handle(rr, httptest.NewRequest(http.MethodPost, "/scheduler/refresh", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, rr.Code)
}

func TestSchedulerHandlers_PauseAndResume(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	scheduler := schedulermocks.NewMockRefreshScheduler(ctrl)
	handlers := NewSchedulerHandlers(scheduler)

	gomock.InOrder(
		scheduler.EXPECT().Pause().Return(schedulers.StatePaused),
		scheduler.EXPECT().Status().Return(schedulers.Status{State: schedulers.StatePaused, Interval: 2 * time.Second}),
		scheduler.EXPECT().Resume().Return(schedulers.StateRunning),
		scheduler.EXPECT().Status().Return(schedulers.Status{State: schedulers.StateRunning, Interval: 2 * time.Second}),
	)

	rr := httptest.NewRecorder()
	require.NoError(t, handlers.Pause.Handle(rr, httptest.NewRequest(http.MethodPost, "/scheduler/pause", nil)))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "PAUSED", decodeStatus(t, rr).State)

	rr = httptest.NewRecorder()
	require.NoError(t, handlers.Resume.Handle(rr, httptest.NewRequest(http.MethodPost, "/scheduler/resume", nil)))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "RUNNING", decodeStatus(t, rr).State)
}

func TestSchedulerHandlers_SetInterval(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	scheduler := schedulermocks.NewMockRefreshScheduler(ctrl)
	scheduler.EXPECT().SetInterval(30 * time.Second).Return(nil)
	scheduler.EXPECT().Status().Return(schedulers.Status{State: schedulers.StateRunning, Interval: 30 * time.Second})

	req := httptest.NewRequest(http.MethodPut, "/scheduler/interval", strings.NewReader(`{"seconds": 30}`))
	rr := httptest.NewRecorder()

	require.NoError(t, NewSchedulerHandlers(scheduler).SetInterval.Handle(rr, req))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(30), decodeStatus(t, rr).IntervalSeconds)
}

func TestSchedulerHandlers_SetInterval_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "zero", body: `{"seconds": 0}`},
		{name: "negative", body: `{"seconds": -5}`},
		{name: "too large", body: `{"seconds": 3601}`},
		{name: "missing field", body: `{}`},
		{name: "unknown field", body: `{"seconds": 5, "minutes": 1}`},
		{name: "wrong type", body: `{"seconds": "five"}`},
		{name: "malformed", body: `{"seconds":`},
		{name: "empty body", body: ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			scheduler := schedulermocks.NewMockRefreshScheduler(ctrl)

			req := httptest.NewRequest(http.MethodPut, "/scheduler/interval", strings.NewReader(tt.body))
			err := NewSchedulerHandlers(scheduler).SetInterval.Handle(httptest.NewRecorder(), req)

			require.Error(t, err)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, codeInvalidInterval, svcErr.Code)
			assert.Equal(t, http.StatusBadRequest, svcErr.HttpStatusCode)
		})
	}
}

func TestSchedulerHandlers_SetInterval_SchedulerRejects(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	scheduler := schedulermocks.NewMockRefreshScheduler(ctrl)
	scheduler.EXPECT().SetInterval(5 * time.Second).Return(schedulers.ErrInvalidInterval)

	req := httptest.NewRequest(http.MethodPut, "/scheduler/interval", strings.NewReader(`{"seconds": 5}`))
	err := NewSchedulerHandlers(scheduler).SetInterval.Handle(httptest.NewRecorder(), req)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInternalSetIntervalFailed, svcErr.Code)
	assert.ErrorIs(t, err, schedulers.ErrInvalidInterval)
}
