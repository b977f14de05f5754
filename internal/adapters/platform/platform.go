// Package platform implements platform detection from the Go runtime.
package platform

import (
	"runtime"

	"go.trai.ch/buildbot/internal/core/domain"
	"go.trai.ch/buildbot/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PlatformDetector = (*Detector)(nil)

// ErrUnsupportedHost is returned when the host OS or architecture has no platform name.
var ErrUnsupportedHost = zerr.New("unsupported host platform")

// archNames maps GOARCH values to the names toolchains use in target triplets.
var archNames = map[string]string{
	"amd64":   "x86_64",
	"386":     "i686",
	"arm64":   "aarch64",
	"arm":     "armv7",
	"ppc64le": "ppc64le",
	"s390x":   "s390x",
	"riscv64": "riscv64",
}

// Detector names platforms as <os>-<arch>-<build type>, e.g. linux-x86_64-release.
type Detector struct {
	goos   string
	goarch string
}

// NewDetector creates a Detector for the running host.
func NewDetector() *Detector {
	return NewDetectorFor(runtime.GOOS, runtime.GOARCH)
}

// NewDetectorFor creates a Detector for the given GOOS and GOARCH.
func NewDetectorFor(goos, goarch string) *Detector {
	return &Detector{goos: goos, goarch: goarch}
}

// Detect returns the platform identifier. The build block and linkage do not
// change the name; debug and release builds are kept apart.
func (d *Detector) Detect(buildType domain.BuildType, _ domain.BuildBlock, _ bool) (string, error) {
	arch, ok := archNames[d.goarch]
	if !ok || d.goos == "" {
		err := zerr.With(ErrUnsupportedHost, "goos", d.goos)
		return "", zerr.With(err, "goarch", d.goarch)
	}
	// Apple names 64-bit ARM arm64 rather than aarch64.
	if d.goos == "darwin" && d.goarch == "arm64" {
		arch = "arm64"
	}
	return d.goos + "-" + arch + "-" + string(buildType), nil
}
