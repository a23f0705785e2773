package app_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"breathrate/internal/app"
	"breathrate/internal/domain"
)

type record struct {
	TS float64   `json:"ts"`
	RR []float64 `json:"rr"`
}

func writeLog(t *testing.T, dir string, recs []record) string {
	t.Helper()
	b, err := json.Marshal(recs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	path := filepath.Join(dir, "session.json")
	if err := os.WriteFile(path, b, 0o600); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func run(t *testing.T, in, out string) (domain.Report, error) {
	t.Helper()
	cfg, err := app.DefaultConfig()
	if err != nil {
		t.Fatalf("DefaultConfig: %v", err)
	}
	cfg.InputPath, cfg.OutputPath = in, out
	w, err := app.NewWire(cfg)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	return app.New(w, nil).Run()
}

// breathing returns 2 Hz samples with a 4 s RR oscillation.
func breathing(n int) []record {
	recs := make([]record, n)
	for i := range recs {
		rr := 1000 + 50*math.Sin(2*math.Pi*float64(i)/8)
		recs[i] = record{TS: 1718163180 + float64(i)*0.5, RR: []float64{rr - 5, rr + 5}}
	}
	return recs
}

func TestApp_Run_Breathing(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.csv")

	report, err := run(t, writeLog(t, dir, breathing(200)), out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Clean.Input != 200 || report.Clean.Retained != 200 {
		t.Errorf("clean stats = %+v", report.Clean)
	}
	if report.Extract.Valid != 24 || report.Export.Records != 24 {
		t.Errorf("extract = %+v, export = %+v", report.Extract, report.Export)
	}

	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
	if lines[0] != "time,bpm" {
		t.Fatalf("header = %q", lines[0])
	}
	// First peak at sample 2 (20:33:01), first record at sample 10 (20:33:05).
	if lines[1] != "20:33:05,15.0" {
		t.Errorf("first row = %q, want 20:33:05,15.0", lines[1])
	}
	for i := 2; i < len(lines); i++ {
		if lines[i] < lines[i-1] {
			t.Errorf("rows out of order: %q before %q", lines[i-1], lines[i])
		}
		if !strings.HasSuffix(lines[i], ",15.0") {
			t.Errorf("row %d = %q, want 15.0 bpm", i, lines[i])
		}
	}
}

func TestApp_Run_Deterministic(t *testing.T) {
	dir := t.TempDir()
	in := writeLog(t, dir, breathing(120))
	a, b := filepath.Join(dir, "a.csv"), filepath.Join(dir, "b.csv")

	ra, err := run(t, in, a)
	if err != nil {
		t.Fatalf("Run a: %v", err)
	}
	rb, err := run(t, in, b)
	if err != nil {
		t.Fatalf("Run b: %v", err)
	}
	ba, _ := os.ReadFile(a)
	bb, _ := os.ReadFile(b)
	if !bytes.Equal(ba, bb) || ra.Export.Digest != rb.Export.Digest {
		t.Error("identical input produced different output")
	}
}

func TestApp_Run_AllMissing(t *testing.T) {
	dir := t.TempDir()
	recs := make([]record, 30)
	for i := range recs {
		recs[i] = record{TS: 1718163180 + float64(i), RR: []float64{}}
	}
	out := filepath.Join(dir, "out.csv")

	report, err := run(t, writeLog(t, dir, recs), out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Clean.Input != 30 || report.Clean.Retained != 0 || report.Extract.Peaks != 0 {
		t.Errorf("report = %+v", report)
	}
	b, _ := os.ReadFile(out)
	if string(b) != "time,bpm\n" {
		t.Errorf("output = %q, want header only", b)
	}
}

func TestApp_Run_MissingInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.csv")

	_, err := run(t, filepath.Join(dir, "absent.json"), out)
	var missing *domain.MissingInputError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want *domain.MissingInputError", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output written despite failure (stat err %v)", err)
	}
}

func TestApp_Run_Malformed(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(in, []byte(`{"ts": 1}`), 0o600); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.csv")

	_, err := run(t, in, out)
	var loadErr *domain.LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("err = %v, want *domain.LoadError", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output written despite failure (stat err %v)", err)
	}
}

func TestNewWire_RejectsBadParams(t *testing.T) {
	cfg, err := app.DefaultConfig()
	if err != nil {
		t.Fatalf("DefaultConfig: %v", err)
	}
	cfg.Params.MinPeakDistance = 0
	if _, err := app.NewWire(cfg); err == nil {
		t.Fatal("expected error for zero peak distance")
	}
}

func TestNewLogger_OutOfOrderWarning(t *testing.T) {
	dir := t.TempDir()
	recs := breathing(40)
	recs[10].TS, recs[11].TS = recs[11].TS, recs[10].TS
	in := writeLog(t, dir, recs)

	cfg, err := app.DefaultConfig()
	if err != nil {
		t.Fatalf("DefaultConfig: %v", err)
	}
	cfg.InputPath, cfg.OutputPath = in, filepath.Join(dir, "out.csv")
	w, err := app.NewWire(cfg)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}

	var logs bytes.Buffer
	report, err := app.New(w, app.NewLogger(&logs, 0)).Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Clean.OutOfOrder != 1 {
		t.Errorf("OutOfOrder = %d, want 1", report.Clean.OutOfOrder)
	}
	if !strings.Contains(logs.String(), "level=WARN") || !strings.Contains(logs.String(), "out_of_order=1") {
		t.Errorf("missing warning in logs:\n%s", logs.String())
	}
}
