// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDBQuery(t *testing.T) {
	before := testutil.ToFloat64(DBQueryErrors.WithLabelValues("select", "test_table"))

	RecordDBQuery("select", "test_table", 2*time.Millisecond, nil)
	if got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("select", "test_table")); got != before {
		t.Errorf("successful query should not count as error: %v -> %v", before, got)
	}

	RecordDBQuery("select", "test_table", 2*time.Millisecond, errors.New("boom"))
	if got := testutil.ToFloat64(DBQueryErrors.WithLabelValues("select", "test_table")); got != before+1 {
		t.Errorf("expected %v errors, got %v", before+1, got)
	}
}

func TestRecordAPIRequest(t *testing.T) {
	counter := APIRequestsTotal.WithLabelValues("GET", "/test", "200")
	before := testutil.ToFloat64(counter)

	RecordAPIRequest("GET", "/test", "200", 5*time.Millisecond)

	if got := testutil.ToFloat64(counter); got != before+1 {
		t.Errorf("expected %v requests, got %v", before+1, got)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("expected %v active, got %v", before+1, got)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("expected %v active, got %v", before, got)
	}
}

func TestRecordLocationEntry(t *testing.T) {
	valid := testutil.ToFloat64(LocationEntries.WithLabelValues("valid"))
	invalid := testutil.ToFloat64(LocationEntries.WithLabelValues("invalid"))

	RecordLocationEntry(true)
	RecordLocationEntry(false)
	RecordLocationEntry(false)

	if got := testutil.ToFloat64(LocationEntries.WithLabelValues("valid")); got != valid+1 {
		t.Errorf("expected %v valid, got %v", valid+1, got)
	}
	if got := testutil.ToFloat64(LocationEntries.WithLabelValues("invalid")); got != invalid+2 {
		t.Errorf("expected %v invalid, got %v", invalid+2, got)
	}
}

func TestMetricsLint(t *testing.T) {
	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}
	for _, p := range problems {
		t.Errorf("metric %s: %s", p.Metric, p.Text)
	}
}
