// Package resolver turns user-supplied option values into a validated, fully derived
// domain.ResolvedConfig.
package resolver

import (
	"fmt"
	"maps"
	"path/filepath"
	"strconv"
	"strings"

	"go.trai.ch/buildbot/internal/core/domain"
	"go.trai.ch/buildbot/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver implements option validation and path derivation.
type Resolver struct {
	detector ports.PlatformDetector
}

// New creates a Resolver that asks detector for the platform identifier.
func New(detector ports.PlatformDetector) *Resolver {
	return &Resolver{detector: detector}
}

// rule checks one option. Enumerated options also set allowed, other options set constraint.
type rule struct {
	flag       string
	kind       error
	value      func(domain.RawOptions) string
	allowed    []string
	valid      func(domain.RawOptions) bool
	constraint string
}

// rules is evaluated in order; the first violation is reported.
var rules = []rule{
	{
		flag:    "action",
		kind:    domain.ErrInvalidAction,
		value:   func(o domain.RawOptions) string { return o.Action },
		valid:   func(o domain.RawOptions) bool { return domain.Action(o.Action).Valid() },
		allowed: domain.ActionNames(),
	},
	{
		flag:    "build-type",
		kind:    domain.ErrInvalidBuildType,
		value:   func(o domain.RawOptions) string { return o.BuildType },
		valid:   func(o domain.RawOptions) bool { return domain.BuildType(o.BuildType).Valid() },
		allowed: domain.BuildTypeNames(),
	},
	{
		flag:    "build-block",
		kind:    domain.ErrInvalidBuildBlock,
		value:   func(o domain.RawOptions) string { return o.BuildBlock },
		valid:   func(o domain.RawOptions) bool { return domain.BuildBlock(o.BuildBlock).Valid() },
		allowed: domain.BuildBlockNames(),
	},
	{
		flag:       "jobs",
		kind:       domain.ErrInvalidJobCount,
		value:      func(o domain.RawOptions) string { return strconv.Itoa(o.Jobs) },
		valid:      func(o domain.RawOptions) bool { return o.Jobs >= 1 },
		constraint: "equal or greater than 1",
	},
	{
		kind:  domain.ErrUnexpectedArguments,
		value: func(o domain.RawOptions) string { return fmt.Sprint(o.Args) },
		valid: func(o domain.RawOptions) bool { return len(o.Args) == 0 },
	},
}

func (r rule) check(o domain.RawOptions) error {
	if r.valid(o) {
		return nil
	}
	return &domain.ConfigError{
		Kind:       r.kind,
		Flag:       r.flag,
		Value:      r.value(o),
		Allowed:    r.allowed,
		Constraint: r.constraint,
	}
}

// Validate checks raw against every option domain and returns the first violation
// as a *domain.ConfigError.
func Validate(raw domain.RawOptions) error {
	for _, r := range rules {
		if err := r.check(raw); err != nil {
			return err
		}
	}
	return nil
}

// Normalize applies cross-field coercions to cfg and reports each one.
// Debug builds always run a single job.
func Normalize(cfg domain.ResolvedConfig) (domain.ResolvedConfig, []domain.Override) {
	var overrides []domain.Override
	if cfg.BuildType == domain.BuildTypeDebug && cfg.Jobs > 1 {
		overrides = append(overrides, domain.Override{
			Field:     "jobs",
			Requested: strconv.Itoa(cfg.Jobs),
			Applied:   "1",
			Reason:    "debug builds run a single job",
		})
		cfg.Jobs = 1
	}
	return cfg, overrides
}

// Resolve validates raw and derives the configuration for an invocation in ws.
// It returns the applied overrides alongside the configuration. Nothing is written to disk.
func (r *Resolver) Resolve(
	raw domain.RawOptions,
	ws domain.Workspace,
) (domain.ResolvedConfig, []domain.Override, error) {
	if err := Validate(raw); err != nil {
		return domain.ResolvedConfig{}, nil, err
	}

	if !filepath.IsAbs(ws.WorkDir) || !filepath.IsAbs(ws.ProjectRoot) {
		err := zerr.With(domain.ErrInvalidWorkspace, "work_dir", ws.WorkDir)
		return domain.ResolvedConfig{}, nil, zerr.With(err, "project_root", ws.ProjectRoot)
	}

	cfg := domain.ResolvedConfig{
		Action:        domain.Action(raw.Action),
		BuildType:     domain.BuildType(raw.BuildType),
		BuildBlock:    domain.BuildBlock(raw.BuildBlock),
		Jobs:          raw.Jobs,
		StaticLinkage: raw.StaticLinkage,
		Verbose:       raw.DebugBuild,
		Version:       raw.Version,
		Environment:   maps.Clone(raw.Environment),
	}
	cfg, overrides := Normalize(cfg)

	buildBase := absolute(raw.BuildPrefix, ws.WorkDir)
	installBase := absolute(raw.InstallPrefix, ws.WorkDir)

	platform, err := r.detector.Detect(cfg.BuildType, cfg.BuildBlock, cfg.StaticLinkage)
	if err != nil {
		return domain.ResolvedConfig{}, nil, zerr.Wrap(err, "failed to detect platform")
	}
	if !isSegment(platform) {
		return domain.ResolvedConfig{}, nil, &domain.ConfigError{
			Kind:       domain.ErrInvalidPlatform,
			Value:      platform,
			Constraint: "must be a single non-empty path segment",
		}
	}
	cfg.Platform = platform

	cfg.BuildPrefix = filepath.Join(buildBase, platform)
	cfg.InstallPrefix = filepath.Join(installBase, platform)

	if raw.DocPrefix != "" {
		cfg.DocPrefix = absolute(raw.DocPrefix, cfg.InstallPrefix)
	}

	cfg.SourceDir = filepath.Join(ws.ProjectRoot, domain.SourceDirName)

	if raw.Doxyfile != "" {
		cfg.Doxyfile = absolute(raw.Doxyfile, ws.WorkDir)
	} else {
		cfg.Doxyfile = domain.DefaultDoxyfile(ws.ProjectRoot)
	}

	return cfg, overrides, nil
}

// absolute returns p as given when it is absolute, or p joined to base.
func absolute(p, base string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

func isSegment(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}
