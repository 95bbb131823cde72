package host

import (
	"runtime/debug"
	"time"
)

// BuildTimestamp returns the compile timestamp embedded by the Go toolchain
// (the vcs.time build setting). The zero time means the binary carries no
// VCS stamp, such as a plain `go test` binary.
func BuildTimestamp() time.Time {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return time.Time{}
	}
	for _, s := range info.Settings {
		if s.Key != "vcs.time" {
			continue
		}
		ts, err := time.Parse(time.RFC3339, s.Value)
		if err != nil {
			return time.Time{}
		}
		return ts
	}
	return time.Time{}
}
