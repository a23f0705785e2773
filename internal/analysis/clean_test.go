package analysis_test

import (
	"math"
	"testing"
	"time"

	"breathrate/internal/analysis"
	"breathrate/internal/domain"
)

func TestClean(t *testing.T) {
	base := time.Unix(1718163180, 0).UTC()
	at := func(s int) time.Time { return base.Add(time.Duration(s) * time.Second) }

	in := []domain.TimedSample{
		{Timestamp: at(0), RRMean: 1000, HasRR: true},
		{Timestamp: at(1)},
		{Timestamp: at(2), RRMean: 990, HasRR: true},
		{Timestamp: at(3), RRMean: 0, HasRR: true},
		{Timestamp: at(4), RRMean: math.NaN(), HasRR: true},
		{Timestamp: at(5), RRMean: 1010, HasRR: true},
		{Timestamp: at(6)},
	}
	clean, stats := analysis.Clean(in)

	if stats.Input != 7 || stats.Retained != 3 {
		t.Errorf("stats = %+v, want Input=7 Retained=3", stats)
	}
	if !stats.First.Equal(at(0)) || !stats.Last.Equal(at(6)) {
		t.Errorf("time range = %v..%v, want %v..%v", stats.First, stats.Last, at(0), at(6))
	}

	want := []float64{1000, 990, 1010}
	if len(clean) != len(want) {
		t.Fatalf("got %d clean samples, want %d", len(clean), len(want))
	}
	for i, s := range clean {
		if s.RRMean != want[i] {
			t.Errorf("clean[%d].RRMean = %v, want %v", i, s.RRMean, want[i])
		}
		if i > 0 && s.Timestamp.Before(clean[i-1].Timestamp) {
			t.Errorf("clean[%d] out of order", i)
		}
	}
}

func TestClean_OutOfOrderKept(t *testing.T) {
	in := []domain.TimedSample{
		{Timestamp: time.Unix(10, 0), RRMean: 1, HasRR: true},
		{Timestamp: time.Unix(5, 0), RRMean: 2, HasRR: true},
		{Timestamp: time.Unix(20, 0), RRMean: 3, HasRR: true},
	}
	clean, stats := analysis.Clean(in)
	if stats.OutOfOrder != 1 {
		t.Errorf("OutOfOrder = %d, want 1", stats.OutOfOrder)
	}
	for i, want := range []float64{1, 2, 3} {
		if clean[i].RRMean != want {
			t.Errorf("clean[%d].RRMean = %v, want %v", i, clean[i].RRMean, want)
		}
	}
}

func TestClean_AllMissing(t *testing.T) {
	in := []domain.TimedSample{{Timestamp: time.Unix(1, 0)}, {Timestamp: time.Unix(2, 0)}}
	clean, stats := analysis.Clean(in)
	if len(clean) != 0 {
		t.Errorf("got %d clean samples, want 0", len(clean))
	}
	if stats.Input != 2 || stats.Retained != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestClean_Empty(t *testing.T) {
	clean, stats := analysis.Clean(nil)
	if len(clean) != 0 || stats.Input != 0 || !stats.First.IsZero() {
		t.Errorf("Clean(nil) = %v, %+v", clean, stats)
	}
}
