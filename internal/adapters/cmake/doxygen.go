package cmake

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/buildbot/internal/core/domain"
	"go.trai.ch/zerr"
)

// DocDir returns where documentation for cfg is written.
func DocDir(cfg domain.ResolvedConfig) string {
	if cfg.DocPrefix != "" {
		return cfg.DocPrefix
	}
	return filepath.Join(cfg.InstallPrefix, domain.DefaultDocPrefix)
}

// RenderDoxyfile appends the settings derived from cfg to the base Doxyfile.
// Doxygen keeps the last assignment of a tag, so these take precedence.
func RenderDoxyfile(base []byte, cfg domain.ResolvedConfig) []byte {
	quiet := "YES"
	if cfg.Verbose {
		quiet = "NO"
	}

	var b bytes.Buffer
	b.Write(base)
	if len(base) > 0 && base[len(base)-1] != '\n' {
		b.WriteByte('\n')
	}
	b.WriteString("\n# Settings below are generated by buildbot.\n")
	fmt.Fprintf(&b, "OUTPUT_DIRECTORY = %s\n", strconv.Quote(DocDir(cfg)))
	fmt.Fprintf(&b, "PROJECT_NUMBER = %s\n", strconv.Quote(cfg.Version))
	fmt.Fprintf(&b, "INPUT = %s\n", strconv.Quote(cfg.SourceDir))
	fmt.Fprintf(&b, "STRIP_FROM_PATH = %s\n", strconv.Quote(cfg.SourceDir))
	fmt.Fprintf(&b, "QUIET = %s\n", quiet)
	return b.Bytes()
}

// GenerateDocumentation writes a Doxyfile for cfg into the build prefix and runs doxygen on it.
func (t *Tool) GenerateDocumentation(ctx context.Context, cfg domain.ResolvedConfig) error {
	//nolint:gosec // Path is provided by the user
	base, err := os.ReadFile(cfg.Doxyfile)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDoxyfileReadFailed.Error()), "path", cfg.Doxyfile)
	}

	if err := mkdir(cfg.BuildPrefix); err != nil {
		return err
	}
	if err := mkdir(DocDir(cfg)); err != nil {
		return err
	}

	doxyfile := filepath.Join(cfg.BuildPrefix, "Doxyfile")
	if err := writeFileAtomic(doxyfile, RenderDoxyfile(base, cfg)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDoxyfileWriteFailed.Error()), "path", doxyfile)
	}

	return t.executor.Execute(ctx, command(cfg, "doxygen", doxyfile))
}
