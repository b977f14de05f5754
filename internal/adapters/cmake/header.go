package cmake

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/buildbot/internal/build"
	"go.trai.ch/buildbot/internal/core/domain"
	"go.trai.ch/zerr"
)

// HeaderPath returns where the build header of cfg is written.
func HeaderPath(cfg domain.ResolvedConfig) string {
	return filepath.Join(cfg.BuildPrefix, "include", "buildinfo.h")
}

// Fingerprint hashes the settings that affect build output.
// Action and verbosity are excluded: they do not change what is built.
func Fingerprint(cfg domain.ResolvedConfig) string {
	h := xxhash.New()
	for _, field := range []string{
		string(cfg.BuildType),
		string(cfg.BuildBlock),
		strconv.FormatBool(cfg.StaticLinkage),
		cfg.Version,
		cfg.Platform,
		cfg.SourceDir,
		cfg.InstallPrefix,
	} {
		_, _ = h.WriteString(field)
		_, _ = h.Write([]byte{0})
	}
	for _, kv := range cfg.Environ() {
		_, _ = h.WriteString(kv)
		_, _ = h.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// RenderHeader returns the C header describing cfg.
func RenderHeader(cfg domain.ResolvedConfig) []byte {
	static := 0
	if cfg.StaticLinkage {
		static = 1
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "/* Generated by buildbot %s. Do not edit. */\n", build.Version)
	b.WriteString("#ifndef BUILDBOT_BUILDINFO_H\n")
	b.WriteString("#define BUILDBOT_BUILDINFO_H\n\n")
	fmt.Fprintf(&b, "#define BUILD_VERSION %s\n", strconv.Quote(cfg.Version))
	fmt.Fprintf(&b, "#define BUILD_PLATFORM %s\n", strconv.Quote(cfg.Platform))
	fmt.Fprintf(&b, "#define BUILD_TYPE %s\n", strconv.Quote(string(cfg.BuildType)))
	fmt.Fprintf(&b, "#define BUILD_BLOCK %s\n", strconv.Quote(string(cfg.BuildBlock)))
	fmt.Fprintf(&b, "#define BUILD_STATIC_LINKAGE %d\n", static)
	fmt.Fprintf(&b, "#define BUILD_CONFIG_HASH %s\n", strconv.Quote(Fingerprint(cfg)))
	b.WriteString("\n#endif /* BUILDBOT_BUILDINFO_H */\n")
	return b.Bytes()
}

// WriteBuildHeader writes the build header into the build prefix.
// An unchanged header is left alone so its timestamp does not trigger rebuilds.
func (t *Tool) WriteBuildHeader(_ context.Context, cfg domain.ResolvedConfig) error {
	path := HeaderPath(cfg)
	content := RenderHeader(cfg)

	//nolint:gosec // Path is derived from the resolved build prefix
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, content) {
		t.logger.Info(path + " is up to date")
		return nil
	}

	if err := mkdir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := writeFileAtomic(path, content); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrHeaderWriteFailed.Error()), "path", path)
	}
	t.logger.Info("wrote " + path)
	return nil
}

// writeFileAtomic writes data to a temporary file next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Best effort cleanup; fails after a successful rename

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	//nolint:gosec // Headers are meant to be world readable
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
