package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nhdewitt/checkcpu/internal/check"
)

func TestReporterResult(t *testing.T) {
	tests := []struct {
		status   check.Status
		wantLine string
		wantCode int
	}{
		{check.StatusOK, "CheckCPU TOTAL OK: total=12.50 occurence=1\n", 0},
		{check.StatusWarning, "CheckCPU TOTAL WARNING: total=12.50 occurence=1\n", 1},
		{check.StatusCritical, "CheckCPU TOTAL CRITICAL: total=12.50 occurence=1\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			var buf bytes.Buffer
			code := New(&buf).Result(check.Result{
				Name:    "CheckCPU TOTAL",
				Status:  tt.status,
				Summary: "total=12.50 occurence=1",
			})

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if buf.String() != tt.wantLine {
				t.Errorf("output = %q, want %q", buf.String(), tt.wantLine)
			}
		})
	}
}

func TestReporterError(t *testing.T) {
	var buf bytes.Buffer
	code := New(&buf).Error("CheckCPU TOTAL", errors.New("reading cpu counters from /proc/stat: no such file"))

	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
	want := "CheckCPU TOTAL UNKNOWN: reading cpu counters from /proc/stat: no such file\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestReporterNoColorForFiles(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatalf("creating output file: %v", err)
	}
	defer f.Close()

	if New(f).color {
		t.Error("colour enabled for a regular file")
	}
}

func TestColorFor(t *testing.T) {
	seen := map[string]check.Status{}
	for _, s := range []check.Status{check.StatusOK, check.StatusWarning, check.StatusCritical, check.StatusUnknown} {
		c := colorFor(s)
		if prev, dup := seen[c]; dup {
			t.Errorf("%v and %v share colour %q", prev, s, c)
		}
		seen[c] = s
	}
}
