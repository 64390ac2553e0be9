package logging

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverPanic logs a panic with its stack and re-panics.
// It must be deferred directly at the start of main.
func RecoverPanic(logger zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}
	logPanic(logger, r)
	panic(r)
}

func logPanic(logger zerolog.Logger, r any) {
	if logger.GetLevel() == zerolog.Disabled {
		fmt.Fprintf(os.Stderr, "PANIC: %v\n%s", r, debug.Stack())
		return
	}
	logger.Error().
		Str("panic", fmt.Sprint(r)).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", debug.Stack()).
		Msg("PANIC")
}
