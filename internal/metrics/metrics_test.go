package metrics

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c interface{ Write(*dto.Metric) error }) float64 {
	t.Helper()
	m := &dto.Metric{}
	if err := c.Write(m); err != nil {
		t.Fatalf("write metric: %v", err)
	}
	if m.Counter != nil {
		return m.Counter.GetValue()
	}
	return m.Gauge.GetValue()
}

func TestRecordMutation(t *testing.T) {
	meetingMutationsTotal.Reset()

	RecordMutation("create", "ok")
	RecordMutation("create", "ok")
	RecordMutation("delete", "not_found")

	if v := counterValue(t, meetingMutationsTotal.WithLabelValues("create", "ok")); v != 2 {
		t.Errorf("expected 2 creates, got %f", v)
	}
	if v := counterValue(t, meetingMutationsTotal.WithLabelValues("delete", "not_found")); v != 1 {
		t.Errorf("expected 1 failed delete, got %f", v)
	}
}

func TestRecordLogin(t *testing.T) {
	loginAttemptsTotal.Reset()

	RecordLogin("rejected")
	RecordLogin("ok")

	if v := counterValue(t, loginAttemptsTotal.WithLabelValues("rejected")); v != 1 {
		t.Errorf("expected 1 rejected login, got %f", v)
	}
}

type field string

func TestRecordValidationFailures(t *testing.T) {
	validationFailuresTotal.Reset()

	RecordValidationFailures(map[field]string{"title": "title required", "endTime": "x"})
	RecordValidationFailures(map[field]string{"title": "title required"})

	if v := counterValue(t, validationFailuresTotal.WithLabelValues("title")); v != 2 {
		t.Errorf("expected 2 title failures, got %f", v)
	}
	if v := counterValue(t, validationFailuresTotal.WithLabelValues("endTime")); v != 1 {
		t.Errorf("expected 1 endTime failure, got %f", v)
	}
}

func TestSetMeetingCount(t *testing.T) {
	SetMeetingCount(7)
	if v := counterValue(t, meetingsStored); v != 7 {
		t.Errorf("expected gauge 7, got %f", v)
	}
}

func TestObserveHTTPRequest(t *testing.T) {
	httpRequestDuration.Reset()
	ObserveHTTPRequest("GET", "/api/meetings", "200", 0.02)
	// histogram only checked for not panicking
}
