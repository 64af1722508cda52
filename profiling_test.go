package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProfilers(t *testing.T) {
	dir := t.TempDir()
	opts := &Options{
		CpuProfile: filepath.Join(dir, "cpu.pprof"),
		MemProfile: filepath.Join(dir, "mem.pprof"),
		Trace:      filepath.Join(dir, "trace.out"),
	}

	shutdown, err := profilers(opts)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	shutdown()

	for _, name := range []string{opts.CpuProfile, opts.MemProfile, opts.Trace} {
		fi, err := os.Stat(name)
		if err != nil {
			t.Errorf("expected %s to be written: %s", name, err)
		} else if fi.Size() == 0 {
			t.Errorf("expected %s to be non-empty", name)
		}
	}
}

func TestProfilersBadPath(t *testing.T) {
	opts := &Options{
		CpuProfile: filepath.Join(t.TempDir(), "cpu.pprof"),
		MemProfile: filepath.Join(t.TempDir(), "missing", "mem.pprof"),
	}

	if _, err := profilers(opts); err == nil {
		t.Fatalf("expected an error for an unwritable profile path")
	}

	// the cpu profile was stopped, so another may start
	shutdown, err := profilers(&Options{CpuProfile: filepath.Join(t.TempDir(), "cpu.pprof")})
	if err != nil {
		t.Fatalf("expected the cpu profiler to have been stopped: %s", err)
	}
	shutdown()
}
