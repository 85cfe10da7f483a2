package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sms4jawaly/sms4jawaly-go/internal/response"
	"github.com/sms4jawaly/sms4jawaly-go/internal/service"
	"github.com/sms4jawaly/sms4jawaly-go/jawaly"
)

// stubMessageService scripts SendBulk for handler tests.
type stubMessageService struct {
	report *jawaly.BulkReport
	err    error
}

func (s *stubMessageService) SendBulk(ctx context.Context, message string, numbers []string, sender string) (*jawaly.BulkReport, error) {
	return s.report, s.err
}

// stubRefresher scripts the scheduler control surface.
type stubRefresher struct {
	running    bool
	startCalls int
	stopCalls  int
}

func (s *stubRefresher) Start() error {
	s.startCalls++
	s.running = true
	return nil
}

func (s *stubRefresher) Stop() error {
	s.stopCalls++
	s.running = false
	return nil
}

func (s *stubRefresher) IsRunning() bool { return s.running }

func TestSendBulk_ReturnsReport(t *testing.T) {
	svc := &stubMessageService{
		report: &jawaly.BulkReport{
			Success:      false,
			TotalSuccess: 4,
			TotalFailed:  2,
			JobIDs:       []string{"J1"},
			Errors:       map[string][]string{"invalid number": {"5", "6"}},
		},
	}
	h := NewMessageHandler(svc, &stubRefresher{})

	body := `{"message":"Hi","numbers":["1","2","3","4","5","6"]}`
	req := httptest.NewRequest(http.MethodPost, "/messages/bulk", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.SendBulk(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even with partial failures", rec.Code)
	}

	var envelope struct {
		Success bool                   `json:"success"`
		Data    response.BulkReportDTO `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !envelope.Success {
		t.Error("envelope success should be true, the call itself worked")
	}
	if envelope.Data.TotalSuccess != 4 || envelope.Data.TotalFailed != 2 {
		t.Errorf("unexpected report payload: %+v", envelope.Data)
	}
	if got := envelope.Data.Errors["invalid number"]; len(got) != 2 {
		t.Errorf("error group missing from payload: %+v", envelope.Data.Errors)
	}
}

func TestSendBulk_BadRequests(t *testing.T) {
	cases := []struct {
		name string
		svc  *stubMessageService
		body string
	}{
		{"invalid json", &stubMessageService{}, `{`},
		{"empty message", &stubMessageService{err: service.ErrEmptyMessage}, `{"numbers":["1"]}`},
		{"no recipients", &stubMessageService{err: service.ErrNoRecipients}, `{"message":"x"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewMessageHandler(tc.svc, &stubRefresher{})

			req := httptest.NewRequest(http.MethodPost, "/messages/bulk", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			h.SendBulk(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestSendBulk_ConfigurationErrorIsBadGateway(t *testing.T) {
	svc := &stubMessageService{err: context.DeadlineExceeded}
	h := NewMessageHandler(svc, &stubRefresher{})

	req := httptest.NewRequest(http.MethodPost, "/messages/bulk",
		strings.NewReader(`{"message":"x","numbers":["1"]}`))
	rec := httptest.NewRecorder()

	h.SendBulk(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestControlRefresher(t *testing.T) {
	refresher := &stubRefresher{}
	h := NewMessageHandler(&stubMessageService{}, refresher)

	start := httptest.NewRequest(http.MethodPost, "/refresher", strings.NewReader(`{"action":"start"}`))
	rec := httptest.NewRecorder()
	h.ControlRefresher(rec, start)

	if rec.Code != http.StatusOK || refresher.startCalls != 1 {
		t.Fatalf("start: status=%d startCalls=%d", rec.Code, refresher.startCalls)
	}

	stop := httptest.NewRequest(http.MethodPost, "/refresher", strings.NewReader(`{"action":"stop"}`))
	rec = httptest.NewRecorder()
	h.ControlRefresher(rec, stop)

	if rec.Code != http.StatusOK || refresher.stopCalls != 1 {
		t.Fatalf("stop: status=%d stopCalls=%d", rec.Code, refresher.stopCalls)
	}

	bogus := httptest.NewRequest(http.MethodPost, "/refresher", strings.NewReader(`{"action":"pause"}`))
	rec = httptest.NewRecorder()
	h.ControlRefresher(rec, bogus)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown action: status = %d, want 400", rec.Code)
	}
}
