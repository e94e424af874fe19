package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"fortio.org/safecast"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"ruletrace/internal/grammar"
	"ruletrace/internal/source"
	"ruletrace/internal/trace"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <expr|file>...",
	Short: "Parse expressions with rule tracing",
	Long:  `Parse runs each argument through the instrumented expression grammar and prints the rule call tree as it unfolds`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().Bool("forward", true, "print a line when a rule is entered")
	parseCmd.Flags().Bool("backward", true, "print a line when a rule returns")
	parseCmd.Flags().Int("width", int(trace.DefaultSnippetWidth), "max input characters shown per line")
	parseCmd.Flags().Bool("summary", false, "print a rule invocation summary after each parse")
	parseCmd.Flags().Bool("files", false, "treat arguments as file paths")
	parseCmd.Flags().Int("jobs", 1, "number of parallel trace sessions")
}

type parseOptions struct {
	cfg      trace.Config // Output is set per session
	summary  bool
	files    bool
	jobs     int
	useColor bool
}

func runParse(cmd *cobra.Command, args []string) error {
	opts, err := collectParseOptions(cmd)
	if err != nil {
		return err
	}

	inputs, labels, err := collectInputs(args, opts.files)
	if err != nil {
		return err
	}

	var failed int
	if opts.jobs <= 1 || len(inputs) == 1 {
		failed = runSequential(inputs, labels, opts)
	} else {
		failed = runParallel(inputs, labels, opts)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed to parse", failed, len(inputs))
	}
	return nil
}

func collectParseOptions(cmd *cobra.Command) (parseOptions, error) {
	var opts parseOptions

	forward, err := cmd.Flags().GetBool("forward")
	if err != nil {
		return opts, fmt.Errorf("failed to get forward flag: %w", err)
	}
	backward, err := cmd.Flags().GetBool("backward")
	if err != nil {
		return opts, fmt.Errorf("failed to get backward flag: %w", err)
	}
	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return opts, fmt.Errorf("failed to get width flag: %w", err)
	}
	opts.summary, err = cmd.Flags().GetBool("summary")
	if err != nil {
		return opts, fmt.Errorf("failed to get summary flag: %w", err)
	}
	opts.files, err = cmd.Flags().GetBool("files")
	if err != nil {
		return opts, fmt.Errorf("failed to get files flag: %w", err)
	}
	opts.jobs, err = cmd.Flags().GetInt("jobs")
	if err != nil {
		return opts, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	colorMode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return opts, fmt.Errorf("failed to get color flag: %w", err)
	}
	if err := validateColorMode(colorMode); err != nil {
		return opts, err
	}

	// Values a ruletrace.toml provides only apply where the flag was left
	// at its default.
	manifest, ok, err := loadManifest(".")
	if err != nil {
		return opts, err
	}
	if ok {
		section := manifest.Config.Trace
		if section.Forward != nil && !cmd.Flags().Changed("forward") {
			forward = *section.Forward
		}
		if section.Backward != nil && !cmd.Flags().Changed("backward") {
			backward = *section.Backward
		}
		if section.SnippetWidth > 0 && !cmd.Flags().Changed("width") {
			width = section.SnippetWidth
		}
		if section.Color != "" && !cmd.Root().PersistentFlags().Changed("color") {
			colorMode = section.Color
		}
	}

	snippetWidth, err := safecast.Conv[uint](width)
	if err != nil {
		return opts, fmt.Errorf("snippet width must not be negative: %w", err)
	}

	opts.useColor = colorMode == "on" || (colorMode == "auto" && isTerminal(os.Stdout))
	opts.cfg = trace.Config{
		Forward:      forward,
		Backward:     backward,
		Color:        opts.useColor,
		SnippetWidth: snippetWidth,
	}
	return opts, nil
}

func collectInputs(args []string, fromFiles bool) (inputs, labels []string, err error) {
	if !fromFiles {
		return args, args, nil
	}
	inputs = make([]string, len(args))
	for i, path := range args {
		content, err := source.Load(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		inputs[i] = content
	}
	return inputs, args, nil
}

func runSequential(inputs, labels []string, opts parseOptions) (failed int) {
	for i, input := range inputs {
		if len(inputs) > 1 {
			fmt.Printf("== %s\n", labels[i])
		}
		if err := runSession(input, opts, os.Stdout); err != nil {
			failed++
		}
	}
	return failed
}

// runParallel traces every input in its own session. Contexts must not be
// shared across sessions, so each one renders into a private buffer and the
// buffers are flushed in argument order once all sessions are done.
func runParallel(inputs, labels []string, opts parseOptions) (failed int) {
	bufs := make([]bytes.Buffer, len(inputs))
	errs := make([]error, len(inputs))

	var g errgroup.Group
	g.SetLimit(opts.jobs)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			errs[i] = runSession(input, opts, &bufs[i])
			return nil
		})
	}
	// Session failures are parse outcomes, not group errors.
	_ = g.Wait()

	for i := range inputs {
		fmt.Printf("== %s\n", labels[i])
		_, _ = io.Copy(os.Stdout, &bufs[i])
		if errs[i] != nil {
			failed++
		}
	}
	return failed
}

// runSession traces one parse with a fresh Context writing to w.
func runSession(input string, opts parseOptions, w io.Writer) error {
	cfg := opts.cfg
	cfg.Output = w
	tc := trace.New(cfg)

	value, err := grammar.New(tc).Parse(input)
	if err != nil {
		fmt.Fprintf(w, "parse error: %v\n", err)
	} else {
		fmt.Fprintf(w, "result: %q\n", value)
	}

	if opts.summary {
		renderSummary(w, tc.Histogram(), opts.useColor)
	}
	return err
}
