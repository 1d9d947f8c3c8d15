package main

import "github.com/hyppau/hyppau/internal/herrors"

// version is the CLI's self-reported version (spec.md §6, -V/--version).
const version = "0.1.0"

// config holds the parsed command-line surface of spec.md §6.
type config struct {
	automatonFile string
	inputFiles    []string
	mode          string
	outputFile    string
	dot           bool
	quiet         bool
	verbosity     int // 0 = silent, 1 = -v, 2+ = -vv
	showVersion   bool
	showHelp      bool
}

// defaultConfig mirrors the teacher's DefaultConfig convention (meta/config.go):
// a single place naming every flag's default, independent of flag-parsing.
func defaultConfig() config {
	return config{mode: "naive"}
}

// validate checks the flag combination is usable before any file is
// touched, per spec.md §7's ConfigError ("bad CLI combination ... missing
// -f"). The -g (dump DOT) path is exempt from requiring -i, since it skips
// matching entirely.
func (c config) validate() error {
	if c.automatonFile == "" {
		return herrors.Newf(herrors.ConfigError, "missing required flag -f (NFAH JSON file)")
	}
	if !c.dot && len(c.inputFiles) == 0 {
		return herrors.Newf(herrors.ConfigError, "at least one -i (input word) flag is required")
	}
	return nil
}
