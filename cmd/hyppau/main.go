// Command hyppau is the CLI front-end for the core engine package
// github.com/hyppau/hyppau: it parses the flag table of spec.md §6, loads an
// NFAH and its D input words, runs the chosen matcher, and writes the
// documented text output.
//
// This binary is the "external collaborator" spec.md §1 explicitly puts out
// of scope for the core: command-line parsing, logging verbosity, and
// output file handling. It exists to exercise the core through the
// documented surface, built in the style of the corpus's own CLI front-ends
// rather than copied from the (library-only) teacher.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/hyppau/hyppau/automaton"
	"github.com/hyppau/hyppau/emit"
	"github.com/hyppau/hyppau/internal/actionfilter"
	"github.com/hyppau/hyppau/internal/herrors"
	"github.com/hyppau/hyppau/intern"
	"github.com/hyppau/hyppau/matcher"
	"github.com/hyppau/hyppau/word"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run implements the full CLI lifecycle and returns the process exit code,
// kept separate from main so tests can exercise it without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		fmt.Fprintln(stderr, herrors.New(herrors.ConfigError, err))
		return herrors.ConfigError.ExitCode()
	}

	if cfg.showHelp {
		printUsage(stdout)
		return 0
	}
	if cfg.showVersion {
		fmt.Fprintf(stdout, "hyppau %s\n", version)
		return 0
	}

	if err := cfg.validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return herrors.KindOf(err).ExitCode()
	}

	logger := log.New(stderr, "", 0)

	if err := runMatch(cfg, stdout, stderr, logger); err != nil {
		fmt.Fprintln(stderr, err)
		return herrors.KindOf(err).ExitCode()
	}
	return 0
}

// parseFlags builds a flag set implementing spec.md §6's table and applies
// args to it.
func parseFlags(args []string, stderr io.Writer) (config, error) {
	cfg := defaultConfig()
	fs := pflag.NewFlagSet("hyppau", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	var verboseCount int
	fs.StringVarP(&cfg.automatonFile, "file", "f", "", "NFAH JSON file (required)")
	fs.StringArrayVarP(&cfg.inputFiles, "input", "i", nil, "input word file; repeat once per dimension, in dimension order")
	fs.StringVarP(&cfg.mode, "mode", "m", "naive", "matching strategy: naive, online, fjs, naive-filtered, online-filtered, fjs-filtered")
	fs.StringVarP(&cfg.outputFile, "output", "o", "", "output destination (default stdout)")
	fs.BoolVarP(&cfg.dot, "graphviz", "g", false, "print the NFAH as Graphviz DOT and skip matching")
	fs.BoolVarP(&cfg.quiet, "quiet", "q", false, "suppress match output")
	fs.CountVarP(&verboseCount, "verbose", "v", "increase verbosity; repeat for more (-v, -vv)")
	fs.BoolVarP(&cfg.showVersion, "version", "V", false, "print version and exit")
	fs.BoolVarP(&cfg.showHelp, "help", "h", false, "print usage and exit")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	cfg.verbosity = verboseCount
	return cfg, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "hyppau: a hyper pattern matching engine over NFAH automata")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: hyppau -f automaton.json -i dim0.log -i dim1.log [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f FILE       NFAH JSON (required)")
	fmt.Fprintln(w, "  -i FILE       input word; repeat once per dimension")
	fmt.Fprintln(w, "  -m MODE       naive|online|fjs|naive-filtered|online-filtered|fjs-filtered (default naive)")
	fmt.Fprintln(w, "  -o FILE       output destination (default stdout)")
	fmt.Fprintln(w, "  -g            print NFAH in Graphviz DOT (skips matching)")
	fmt.Fprintln(w, "  -q            suppress match output")
	fmt.Fprintln(w, "  -v, -vv       verbosity")
	fmt.Fprintln(w, "  -V, --version version")
	fmt.Fprintln(w, "  -h, --help    this message")
}

// runMatch loads the automaton and input words, runs the chosen matcher,
// and writes the documented output — or, with -g, writes the DOT dump and
// returns without matching at all.
func runMatch(cfg config, stdout, stderr io.Writer, logger *log.Logger) error {
	table := intern.NewTable()

	af, err := os.Open(cfg.automatonFile)
	if err != nil {
		return herrors.New(herrors.IoError, fmt.Errorf("opening %s: %w", cfg.automatonFile, err))
	}
	defer af.Close()

	n, err := automaton.LoadJSON(af, table)
	if err != nil {
		return classifyAutomatonError(err)
	}

	if cfg.dot {
		out := stdout
		if cfg.outputFile != "" {
			f, err := os.Create(cfg.outputFile)
			if err != nil {
				return herrors.New(herrors.IoError, fmt.Errorf("creating %s: %w", cfg.outputFile, err))
			}
			defer f.Close()
			out = f
		}
		if err := automaton.WriteDOT(out, n, table); err != nil {
			return herrors.New(herrors.IoError, err)
		}
		return nil
	}

	if n.Dimensions() != len(cfg.inputFiles) {
		return herrors.Newf(herrors.SemanticError, "automaton declares %d dimensions, got %d -i flags", n.Dimensions(), len(cfg.inputFiles))
	}

	mode, err := matcher.ParseMode(cfg.mode)
	if err != nil {
		return herrors.New(herrors.ConfigError, err)
	}

	readers := make([]io.Reader, len(cfg.inputFiles))
	var closers []io.Closer
	defer func() {
		for _, c := range closers {
			c.Close()
		}
	}()
	for i, path := range cfg.inputFiles {
		f, err := os.Open(path)
		if err != nil {
			return herrors.New(herrors.IoError, fmt.Errorf("opening %s: %w", path, err))
		}
		closers = append(closers, f)
		readers[i] = f
	}

	w, err := word.LoadWords(readers, table)
	if err != nil {
		return herrors.New(herrors.ParseError, err)
	}

	if cfg.verbosity >= 1 {
		logActionCoverage(logger, n, w, table)
	}

	var diagnostics io.Writer
	if mode == matcher.FJS || mode == matcher.FJSFiltered {
		diagnostics = stderr
	}

	matches, err := matcher.Run(n, w, mode, diagnostics)
	if err != nil {
		return herrors.New(herrors.InternalInvariantViolated, err)
	}

	out := stdout
	if cfg.outputFile != "" {
		f, err := os.Create(cfg.outputFile)
		if err != nil {
			return herrors.New(herrors.IoError, fmt.Errorf("creating %s: %w", cfg.outputFile, err))
		}
		defer f.Close()
		out = f
	}

	var emitter emit.Emitter
	if cfg.quiet {
		emitter = emit.QuietEmitter{}
	} else {
		emitter = emit.NewTextEmitter(out)
	}
	if err := emit.EmitAll(emitter, matches); err != nil {
		return herrors.New(herrors.IoError, err)
	}
	return nil
}

// classifyAutomatonError maps automaton.LoadJSON's sentinel-wrapped errors
// onto the CLI's error taxonomy (spec.md §7): malformed JSON is a
// ParseError, every other automaton.Err* is a SemanticError.
func classifyAutomatonError(err error) error {
	switch {
	case isErr(err, automaton.ErrMalformedJSON):
		return herrors.New(herrors.ParseError, err)
	default:
		return herrors.New(herrors.SemanticError, err)
	}
}

func isErr(err, target error) bool {
	for err != nil {
		if err == target {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}

// logActionCoverage uses the Aho-Corasick action prefilter to report, at
// -v, whether each input dimension contains any action the automaton
// actually labels a transition with. A dimension with no known action can
// never contribute to a non-trivial match (spec.md's "unknown action ...
// produces no new match" boundary behavior); this is purely diagnostic and
// never changes the match set.
func logActionCoverage(logger *log.Logger, n *automaton.NFAH, w *word.Words, table *intern.Table) {
	for k := 0; k < n.Dimensions(); k++ {
		var known []string
		for a := range n.AlphabetOf(k) {
			known = append(known, table.String(uint32(a)))
		}
		af, err := actionfilter.Build(known)
		if err != nil {
			logger.Printf("dimension %d: action prefilter unavailable: %v", k, err)
			continue
		}

		var raw []byte
		for i := 0; i < w.Len(k); i++ {
			raw = append(raw, []byte(table.String(uint32(w.Get(k, i))))...)
			raw = append(raw, '\n')
		}
		if !af.ContainsKnownAction(raw) {
			logger.Printf("dimension %d: input contains none of the automaton's %d known actions", k, len(known))
		}
	}
}
