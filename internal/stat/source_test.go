package stat

import "testing"

func TestParseSource(t *testing.T) {
	for _, src := range Sources {
		got, err := ParseSource(string(src))
		if err != nil || got != src {
			t.Errorf("ParseSource(%q) = %q, %v", src, got, err)
		}
	}
	if _, err := ParseSource("wmi"); err == nil {
		t.Error("ParseSource(wmi) succeeded, want error")
	}
}

func TestNewReader(t *testing.T) {
	r, err := NewReader(SourceProcStat, "/tmp/stat")
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	ps, ok := r.(*ProcStatReader)
	if !ok || ps.Path != "/tmp/stat" {
		t.Errorf("NewReader(procstat) = %#v", r)
	}

	r, err = NewReader(SourceGopsutil, "")
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	if _, ok := r.(*TimesReader); !ok {
		t.Errorf("NewReader(gopsutil) = %T, want *TimesReader", r)
	}

	if r, err = NewReader(SourceAuto, ""); err != nil || r == nil {
		t.Errorf("NewReader(auto) = %v, %v", r, err)
	}

	if _, err = NewReader("bogus", ""); err == nil {
		t.Error("NewReader(bogus) succeeded, want error")
	}
}

func TestUnitOf(t *testing.T) {
	if got := UnitOf(NewProcStatReader("")); got != UnitTicks {
		t.Errorf("UnitOf(procstat) = %v, want ticks", got)
	}
	if got := UnitOf(NewTimesReader()); got != UnitSeconds {
		t.Errorf("UnitOf(gopsutil) = %v, want seconds", got)
	}
}
