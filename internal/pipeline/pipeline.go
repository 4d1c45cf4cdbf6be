package pipeline

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/Sumatoshi-tech/nsmigrate/internal/config"
)

// Engine rewrites one file's lines. Implementations must return the
// input slice unchanged (same backing array is fine) when nothing needs
// rewriting, and must never mutate the input.
type Engine interface {
	Apply(lines []string) []string
}

// Pipeline drives one migration run: walk, rewrite, write back, report.
type Pipeline struct {
	engine   Engine
	cfg      *config.Config
	progress io.Writer
}

// New builds a pipeline. Progress output (per-file status, dry-run
// paths) goes to progress; pass io.Discard to silence it entirely.
func New(engine Engine, cfg *config.Config, progress io.Writer) *Pipeline {
	return &Pipeline{
		engine:   engine,
		cfg:      cfg,
		progress: progress,
	}
}

// Run processes every configured root in order. Per-file I/O failures
// are recorded in the summary and do not abort the run; only walk-level
// failures (an unreadable root) are returned as errors.
func (p *Pipeline) Run() (*Summary, error) {
	summary := &Summary{}
	started := time.Now()

	for _, root := range p.cfg.Roots {
		if p.cfg.Verbose {
			fmt.Fprintf(p.progress, "processing files in %s\n", root)
		}

		walkErr := Walk(root, p.cfg.IgnoreDirs, p.cfg.Extensions, func(path string) error {
			p.processFile(path, summary)

			return nil
		})
		if walkErr != nil {
			return summary, walkErr
		}
	}

	summary.Elapsed = time.Since(started)

	return summary, nil
}

// processFile runs one file through the engine and commits the result.
// All failure paths leave the original file untouched.
func (p *Pipeline) processFile(path string, summary *Summary) {
	summary.Scanned++

	original, readErr := os.ReadFile(path)
	if readErr != nil {
		p.recordFailure(summary, path, readErr)

		return
	}

	summary.Bytes += int64(len(original))

	lines := strings.Split(string(original), "\n")
	rewritten := strings.Join(p.engine.Apply(lines), "\n")

	if rewritten == string(original) {
		summary.Unchanged++
		p.statusLine(color.Faint, "unchanged %s", path)

		return
	}

	if p.cfg.DryRun {
		summary.Changed++
		summary.ChangedPaths = append(summary.ChangedPaths, path)

		// Dry-run always reports the path, verbose or not.
		fmt.Fprintln(p.progress, path)

		if p.cfg.ShowDiff {
			fmt.Fprint(p.progress, renderDiff(string(original), rewritten))
		}

		return
	}

	writeErr := writeFileAtomic(path, original, []byte(rewritten), p.cfg.Backup)
	if writeErr != nil {
		p.recordFailure(summary, path, writeErr)

		return
	}

	summary.Changed++
	summary.ChangedPaths = append(summary.ChangedPaths, path)
	p.statusLine(color.FgGreen, "changed   %s", path)
}

func (p *Pipeline) recordFailure(summary *Summary, path string, err error) {
	summary.Failed++
	summary.Failures = append(summary.Failures, Failure{Path: path, Reason: err.Error()})
	p.statusLine(color.FgRed, "failed    %s: %v", path, err)
}

func (p *Pipeline) statusLine(attr color.Attribute, format string, args ...any) {
	if !p.cfg.Verbose {
		return
	}

	color.New(attr).Fprintf(p.progress, format+"\n", args...)
}
