// Package runner checks many inputs concurrently.
package runner

import (
	"io"

	"github.com/yaklabco/gramlint/pkg/config"
)

// StdinPath is the path that stands for standard input.
const StdinPath = "-"

// Options controls multi-input checking behavior.
type Options struct {
	// Paths are the user-specified inputs: files, directories or StdinPath.
	// If empty, standard input is read.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (with leading dot) checked when
	// walking directories. Defaults to config.DefaultExtensions().
	// Files named explicitly are checked whatever their extension.
	Extensions []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Stdin is read when StdinPath is among the inputs.
	// Defaults to os.Stdin.
	Stdin io.Reader
}

// OptionsFromConfig creates Options for paths from config.Config.
func OptionsFromConfig(cfg *config.Config, paths []string) Options {
	opts := Options{Paths: paths}
	if cfg == nil {
		return opts
	}
	opts.Extensions = cfg.Extensions
	opts.ExcludeGlobs = cfg.Ignore
	opts.Jobs = cfg.Jobs
	return opts
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to standard input.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{StdinPath}
	}
	return o.Paths
}
