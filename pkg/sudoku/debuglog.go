package sudoku

import (
	"log"
	"os"
	"sync/atomic"
)

// Lightweight, opt-in diagnostic tracing for the propagation and search
// hot paths. Enable with the SUDOKU_KERNEL_TRACE=1 environment variable or
// by setting SolverConfig.Trace (which flips the same global flag at
// Solver construction time). This is free-text developer diagnostics, not
// the structured, caller-owned StepTrace described in spec §3/§6.

var debugTraceEnabled atomic.Bool

func init() {
	if os.Getenv("SUDOKU_KERNEL_TRACE") == "1" {
		debugTraceEnabled.Store(true)
	}
}

func enableDebugTrace()  { debugTraceEnabled.Store(true) }
func disableDebugTrace() { debugTraceEnabled.Store(false) }

func debugTracef(format string, args ...any) {
	if !debugTraceEnabled.Load() {
		return
	}
	log.Printf("[sudoku] "+format, args...)
}
