package platform_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildbot/internal/adapters/platform"
	"go.trai.ch/buildbot/internal/core/domain"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		goos, goarch string
		buildType    domain.BuildType
		want         string
	}{
		{"linux", "amd64", domain.BuildTypeRelease, "linux-x86_64-release"},
		{"linux", "amd64", domain.BuildTypeDebug, "linux-x86_64-debug"},
		{"linux", "arm64", domain.BuildTypeRelease, "linux-aarch64-release"},
		{"darwin", "arm64", domain.BuildTypeRelease, "darwin-arm64-release"},
		{"darwin", "amd64", domain.BuildTypeDebug, "darwin-x86_64-debug"},
		{"windows", "386", domain.BuildTypeRelease, "windows-i686-release"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			d := platform.NewDetectorFor(tt.goos, tt.goarch)
			got, err := d.Detect(tt.buildType, domain.BuildBlockAll, false)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_IgnoresBlockAndLinkage(t *testing.T) {
	d := platform.NewDetectorFor("linux", "amd64")

	a, err := d.Detect(domain.BuildTypeRelease, domain.BuildBlockAll, false)
	require.NoError(t, err)
	b, err := d.Detect(domain.BuildTypeRelease, domain.BuildBlockManaged, true)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDetect_UnsupportedArch(t *testing.T) {
	d := platform.NewDetectorFor("linux", "wasm")
	_, err := d.Detect(domain.BuildTypeRelease, domain.BuildBlockAll, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported host platform")
}

func TestNewDetector_Host(t *testing.T) {
	got, err := platform.NewDetector().Detect(domain.BuildTypeRelease, domain.BuildBlockAll, false)
	if err != nil {
		t.Skipf("no platform name for %s/%s", runtime.GOOS, runtime.GOARCH)
	}
	assert.Contains(t, got, runtime.GOOS+"-")
}
