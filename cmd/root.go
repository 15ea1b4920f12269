// Package cmd provides the root command and CLI setup for doclint.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mouse-blink/doclint/internal/adapter"
	"github.com/mouse-blink/doclint/internal/controller"
	"github.com/mouse-blink/doclint/internal/domain"
	m "github.com/mouse-blink/doclint/internal/model"
	"github.com/mouse-blink/doclint/internal/schema"
)

// Process exit statuses.
const (
	// ExitViolations signals fail-on violations were found.
	ExitViolations = 1
	// ExitConfigError signals an unreadable root or malformed rule table.
	ExitConfigError = 2
)

// ExitError carries the process exit status out of command execution.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}

	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

var fsAdapter adapter.SourceFSAdapter
var reportWriter adapter.ReportWriter

func init() {
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportWriter = adapter.NewReportWriter()

	// Optional .env so DOCLINT_* defaults apply in project checkouts.
	_ = godotenv.Load()
}

// checkOptions holds the flags shared by the root and check commands.
type checkOptions struct {
	rules    string
	failOn   []string
	format   string
	workers  int
	failFast bool
	exclude  []string
	output   string
}

func (o *checkOptions) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.rules, "rules", "", "rule table JSON file (default: embedded table, or DOCLINT_RULES)")
	flags.StringSliceVar(&o.failOn, "fail-on", nil, "violation kinds causing a non-zero exit (default: from rule table)")
	flags.StringVar(&o.format, "format", "", "output format: text or json (or DOCLINT_FORMAT)")
	flags.IntVarP(&o.workers, "workers", "w", 0, "number of parallel workers (default: host core count, or DOCLINT_WORKERS)")
	flags.BoolVar(&o.failFast, "fail-fast", false, "stop scheduling new files after the first failing violation")
	flags.StringArrayVarP(&o.exclude, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	flags.StringVarP(&o.output, "output", "o", "", "also write the rendered report to a file")
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:           "doclint [paths...]",
		Short:         "Documentation compliance checker",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}
	opts.bind(cmd)

	return cmd
}

// runCheck is the shared implementation behind the root and check commands.
func runCheck(cmd *cobra.Command, opts *checkOptions, args []string) error {
	registry, err := loadRegistry(opts.rules)
	if err != nil {
		return &ExitError{Code: ExitConfigError, Err: err}
	}

	failOn, err := resolveFailOn(opts.failOn, registry)
	if err != nil {
		return &ExitError{Code: ExitConfigError, Err: err}
	}

	format, explicit, err := resolveFormat(opts.format)
	if err != nil {
		return &ExitError{Code: ExitConfigError, Err: err}
	}

	workflow := domain.NewWorkflow(fsAdapter, registry)

	report, err := workflow.Check(cmd.Context(), domain.CheckArgs{
		Paths:    parsePaths(args),
		Exclude:  opts.exclude,
		Workers:  resolveWorkers(opts.workers),
		FailFast: opts.failFast,
		FailOn:   failOn,
	})
	if err != nil {
		return &ExitError{Code: ExitConfigError, Err: err}
	}

	ui := controller.NewUI(cmd, format, !explicit && controller.IsTTY(os.Stdout))
	if err := ui.DisplayReport(report); err != nil {
		return &ExitError{Code: ExitConfigError, Err: err}
	}

	if opts.output != "" {
		if err := writeReportFile(opts.output, format, report); err != nil {
			return &ExitError{Code: ExitConfigError, Err: err}
		}
	}

	if report.Failing(failOn) {
		return &ExitError{Code: ExitViolations}
	}

	return nil
}

func writeReportFile(path, format string, report m.Report) error {
	var (
		rendered []byte
		err      error
	)

	if format == "json" {
		rendered, err = controller.RenderJSON(report)
		if err != nil {
			return err
		}
	} else {
		rendered = []byte(controller.RenderText(report, false))
	}

	return reportWriter.Write(m.Path(path), rendered)
}

func loadRegistry(rulesFlag string) (*schema.Registry, error) {
	path := rulesFlag
	if path == "" {
		path = os.Getenv("DOCLINT_RULES")
	}

	if path == "" {
		return schema.Default(), nil
	}

	return schema.Load(path)
}

func resolveFailOn(names []string, registry *schema.Registry) ([]m.ViolationKind, error) {
	if len(names) == 0 {
		return registry.FailOn(), nil
	}

	kinds := make([]m.ViolationKind, 0, len(names))

	for _, name := range names {
		kind, err := m.ParseViolationKind(name)
		if err != nil {
			return nil, fmt.Errorf("--fail-on: %w", err)
		}

		kinds = append(kinds, kind)
	}

	return kinds, nil
}

// resolveFormat returns the output format and whether it was requested
// explicitly (flag or environment); an explicit text format suppresses
// the interactive TUI.
func resolveFormat(flagValue string) (format string, explicit bool, err error) {
	format = flagValue
	if format == "" {
		format = os.Getenv("DOCLINT_FORMAT")
	}

	if format == "" {
		return "text", false, nil
	}

	if format != "text" && format != "json" {
		return "", false, fmt.Errorf("unknown format %q (want text or json)", format)
	}

	return format, true, nil
}

func resolveWorkers(flagValue int) int {
	if flagValue > 0 {
		return flagValue
	}

	if env := os.Getenv("DOCLINT_WORKERS"); env != "" {
		if parsed, err := strconv.Atoi(env); err == nil && parsed > 0 {
			return parsed
		}
	}

	return 0
}

// parsePaths converts command arguments into scan roots, defaulting to
// a recursive scan of the current directory.
func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			fmt.Fprintf(os.Stderr, "doclint: %v\n", exitErr.Err)
		}

		os.Exit(exitErr.Code)
	}

	fmt.Fprintf(os.Stderr, "doclint: %v\n", err)
	os.Exit(ExitConfigError)
}
