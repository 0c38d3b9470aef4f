// Package version carries the compiler version string.
package version

// Version is overridable at link time:
//
//	go build -ldflags "-X .../internal/version.Version=1.2.3"
var Version = "0.1.0-dev"

func String() string { return "cmmc " + Version }
