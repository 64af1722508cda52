package main

import (
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
)

// profilers enables any optional cpu, memory, or trace profiling outputs, and
// returns a shutdown function to be called when the run ends.  The harness
// spends most of its time waiting on child processes, so the cpu profile is
// mostly useful for random file generation and the builtin reference.
func profilers(opts *Options) (shutdown func(), err error) {
	var stops []func()

	shutdown = func() {
		for i := len(stops) - 1; i >= 0; i-- {
			stops[i]()
		}
	}

	create := func(name string) (*os.File, error) {
		fh, err := os.Create(name)
		if err != nil {
			shutdown()
		}
		return fh, err
	}

	if opts.CpuProfile != "" {
		fh, err := create(opts.CpuProfile)
		if err != nil {
			return nil, err
		}
		if err := pprof.StartCPUProfile(fh); err != nil {
			fh.Close()
			shutdown()
			return nil, err
		}
		stops = append(stops, func() {
			pprof.StopCPUProfile()
			fh.Close()
		})
	}

	if opts.MemProfile != "" {
		fh, err := create(opts.MemProfile)
		if err != nil {
			return nil, err
		}
		stops = append(stops, func() {
			runtime.GC()
			if err := pprof.WriteHeapProfile(fh); err != nil {
				log.Printf("unable to write memory profile: %s", err)
			}
			fh.Close()
		})
	}

	if opts.Trace != "" {
		fh, err := create(opts.Trace)
		if err != nil {
			return nil, err
		}
		if err := trace.Start(fh); err != nil {
			fh.Close()
			shutdown()
			return nil, err
		}
		stops = append(stops, func() {
			trace.Stop()
			fh.Close()
		})
	}

	return shutdown, nil
}
