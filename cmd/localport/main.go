package main

import (
	"runtime"

	"github.com/bnema/localport/internal/cli/cmd"
	"github.com/bnema/localport/internal/domain/build"
	"github.com/bnema/localport/internal/logging"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	defer logging.RecoverPanic(logging.NewFromEnv())

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
