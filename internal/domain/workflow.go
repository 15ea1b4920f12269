package domain

import (
	"bytes"
	"context"
	"fmt"
	"runtime"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/doclint/internal/adapter"
	m "github.com/mouse-blink/doclint/internal/model"
	"github.com/mouse-blink/doclint/internal/schema"
)

// CheckArgs parameterizes a compliance run.
type CheckArgs struct {
	Paths    []m.Path
	Exclude  []string
	Workers  int
	FailFast bool
	FailOn   []m.ViolationKind
}

// ListArgs parameterizes a declaration inventory.
type ListArgs struct {
	Paths   []m.Path
	Exclude []string
}

// FileInventory summarizes one file for the list command.
type FileInventory struct {
	File         m.Path
	Declarations int
	Documented   int
}

// Workflow defines the compliance-checking operations exposed to the CLI.
type Workflow interface {
	Check(ctx context.Context, args CheckArgs) (m.Report, error)
	Inventory(ctx context.Context, args ListArgs) ([]FileInventory, error)
}

type workflow struct {
	fsAdapter  adapter.SourceFSAdapter
	scanner    *Scanner
	associator *Associator
	validator  *Validator
}

// NewWorkflow creates a Workflow over the provided filesystem adapter
// and rule registry.
func NewWorkflow(fsAdapter adapter.SourceFSAdapter, registry *schema.Registry) Workflow {
	return &workflow{
		fsAdapter:  fsAdapter,
		scanner:    NewScanner(),
		associator: NewAssociator(),
		validator:  NewValidator(registry),
	}
}

// fileOutcome is the private result of processing one file. Workers
// fill disjoint slots of a preallocated slice, so the hot path needs no
// locks; outcomes are merged only after the pool drains.
type fileOutcome struct {
	processed  bool
	violations []m.Violation
	diagnostic *m.Diagnostic
}

func (o fileOutcome) hasFailing(failOn []m.ViolationKind) bool {
	for _, violation := range o.violations {
		for _, kind := range failOn {
			if violation.Type == kind {
				return true
			}
		}
	}

	return false
}

// Check scans, associates and validates every discovered file across a
// bounded worker pool, then aggregates deterministically. The final
// report order is independent of worker completion order.
func (w *workflow) Check(ctx context.Context, args CheckArgs) (m.Report, error) {
	files, err := w.fsAdapter.Discover(args.Paths, args.Exclude)
	if err != nil {
		return m.Report{}, fmt.Errorf("discovering files: %w", err)
	}

	workers := args.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	outcomes := make([]fileOutcome, len(files))

	group, groupCtx := errgroup.WithContext(runCtx)
	group.SetLimit(workers)

	for i, path := range files {
		i, path := i, path
		group.Go(func() error {
			// Once cancelled, no new files start; already-started
			// scans run to completion so no partial-file results leak.
			if groupCtx.Err() != nil {
				return nil
			}

			outcomes[i] = w.processFile(path)

			if args.FailFast && outcomes[i].hasFailing(args.FailOn) {
				cancel()
			}

			return nil
		})
	}

	_ = group.Wait()

	var (
		violations  []m.Violation
		diagnostics []m.Diagnostic
		scanned     int
	)

	for _, outcome := range outcomes {
		if !outcome.processed {
			continue
		}

		if outcome.diagnostic != nil {
			diagnostics = append(diagnostics, *outcome.diagnostic)

			continue
		}

		scanned++

		violations = append(violations, outcome.violations...)
	}

	return Aggregate(scanned, violations, diagnostics), nil
}

// Inventory lists declaration and documentation counts per file.
func (w *workflow) Inventory(ctx context.Context, args ListArgs) ([]FileInventory, error) {
	files, err := w.fsAdapter.Discover(args.Paths, args.Exclude)
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}

	inventories := make([]FileInventory, 0, len(files))

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file, readErr := w.readSource(path)
		if readErr != nil {
			continue
		}

		inventory := FileInventory{File: path}

		for _, decl := range w.scanner.Scan(file) {
			inventory.Declarations++

			if _, ok := w.associator.Associate(file, decl); ok {
				inventory.Documented++
			}
		}

		inventories = append(inventories, inventory)
	}

	return inventories, nil
}

// processFile runs the scan/associate/validate pipeline for one file.
// A failure, including a panic, degrades to a per-file diagnostic so
// one bad file never takes down the run.
func (w *workflow) processFile(path m.Path) (outcome fileOutcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = fileOutcome{
				processed: true,
				diagnostic: &m.Diagnostic{
					File:    path,
					Code:    m.DiagInternalError,
					Message: fmt.Sprintf("recovered while processing: %v", r),
				},
			}
		}
	}()

	file, err := w.readSource(path)
	if err != nil {
		return fileOutcome{
			processed: true,
			diagnostic: &m.Diagnostic{
				File:    path,
				Code:    m.DiagUnreadableFile,
				Message: err.Error(),
			},
		}
	}

	outcome.processed = true

	for _, decl := range w.scanner.Scan(file) {
		var block *m.CommentBlock

		if found, ok := w.associator.Associate(file, decl); ok {
			block = &found
		}

		outcome.violations = append(outcome.violations, w.validator.Validate(decl, block)...)
	}

	return outcome
}

func (w *workflow) readSource(path m.Path) (m.SourceFile, error) {
	raw, err := w.fsAdapter.ReadFile(path)
	if err != nil {
		return m.SourceFile{}, fmt.Errorf("cannot read: %w", err)
	}

	if !utf8.Valid(raw) || bytes.IndexByte(raw, 0) >= 0 {
		return m.SourceFile{}, fmt.Errorf("not a text file")
	}

	return m.SourceFile{Path: path, Lines: splitLines(raw)}, nil
}

func splitLines(raw []byte) []string {
	lines := strings.Split(string(raw), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}
