// Package profile unifies the profiling api between the Gio frame profiler
// and pkg/profile.
package profile

import (
	"fmt"

	"gioui.org/layout"
	"gioui.org/x/profiling"
	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
)

// Profiler starts and stops one kind of profile.
type Profiler struct {
	Type     Opt
	Starter  func(p *profile.Profile)
	Stopper  func()
	Recorder func(gtx layout.Context)
}

// Start profiling.
func (pfn *Profiler) Start() {
	switch {
	case pfn.Type == Gio && pfn.Starter != nil:
		pfn.Starter(nil)
	case pfn.Starter != nil:
		pfn.Stopper = profile.Start(pfn.Starter, profile.Quiet).Stop
	}
}

// Stop profiling. Stop is safe to call on a profiler that never started.
func (pfn *Profiler) Stop() {
	if pfn.Stopper != nil {
		pfn.Stopper()
		pfn.Stopper = nil
	}
}

// Record frame timings. It does nothing unless profiling Gio.
func (pfn Profiler) Record(gtx layout.Context) {
	if pfn.Recorder != nil {
		pfn.Recorder(gtx)
	}
}

// Opt specifies the various profiling options.
type Opt string

const (
	None      Opt = "none"
	CPU       Opt = "cpu"
	Memory    Opt = "mem"
	Block     Opt = "block"
	Goroutine Opt = "goroutine"
	Mutex     Opt = "mutex"
	Trace     Opt = "trace"
	Gio       Opt = "gio"
)

var starters = map[Opt]func(*profile.Profile){
	CPU:       profile.CPUProfile,
	Memory:    profile.MemProfile,
	Block:     profile.BlockProfile,
	Goroutine: profile.GoroutineProfile,
	Mutex:     profile.MutexProfile,
	Trace:     profile.TraceProfile,
}

// ParseOpt validates the name of a profiling option. The empty string
// means None.
func ParseOpt(s string) (Opt, error) {
	switch o := Opt(s); o {
	case "", None:
		return None, nil
	case Gio:
		return o, nil
	default:
		if _, ok := starters[o]; ok {
			return o, nil
		}
		return None, fmt.Errorf("unknown profile %q", s)
	}
}

// NewProfiler creates a profiler based on the selected option. Problems
// with the Gio recorder are reported to logger.
func (p Opt) NewProfiler(logger logrus.FieldLogger) Profiler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if s, ok := starters[p]; ok {
		return Profiler{Type: p, Starter: s}
	}
	if p != Gio {
		return Profiler{Type: None}
	}
	var recorder *profiling.CSVTimingRecorder
	return Profiler{
		Type: p,
		Starter: func(*profile.Profile) {
			var err error
			recorder, err = profiling.NewRecorder(nil)
			if err != nil {
				logger.WithError(err).Error("starting frame profiler")
			}
		},
		Stopper: func() {
			if recorder == nil {
				return
			}
			if err := recorder.Stop(); err != nil {
				logger.WithError(err).Error("stopping frame profiler")
			}
		},
		Recorder: func(gtx layout.Context) {
			if recorder == nil {
				return
			}
			recorder.Profile(gtx)
		},
	}
}
