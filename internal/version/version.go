package version

import (
	"fmt"
	"runtime/debug"
)

// Set via ldflags at build time, e.g.
//
//	-X github.com/serpent-os/tuirun/internal/version.version=v0.3.0
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Version is the ldflags version or, for `go install` builds that carry no
// ldflags, the module version recorded in the binary.
func Version() string {
	if version != "dev" {
		return version
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return version
}

func Commit() string    { return commit }
func BuildDate() string { return buildDate }

// String formats the full version line printed by `tuirun version`.
func String() string {
	return fmt.Sprintf("tuirun %s (%s, %s)", Version(), Commit(), BuildDate())
}
