package pipeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Summary output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ErrUnknownFormat indicates an unsupported summary format was requested.
var ErrUnknownFormat = errors.New("unknown summary format")

// Failure records one file that could not be processed.
type Failure struct {
	Path   string `json:"path"   yaml:"path"`
	Reason string `json:"reason" yaml:"reason"`
}

// Summary aggregates the outcome of one run.
type Summary struct {
	Scanned   int           `json:"scanned"   yaml:"scanned"`
	Changed   int           `json:"changed"   yaml:"changed"`
	Unchanged int           `json:"unchanged" yaml:"unchanged"`
	Failed    int           `json:"failed"    yaml:"failed"`
	Bytes     int64         `json:"bytes"     yaml:"bytes"`
	Elapsed   time.Duration `json:"elapsed"   yaml:"elapsed"`

	ChangedPaths []string  `json:"changed_paths,omitempty" yaml:"changed_paths,omitempty"`
	Failures     []Failure `json:"failures,omitempty"      yaml:"failures,omitempty"`
}

// WriteSummary renders the summary in the requested format.
func WriteSummary(w io.Writer, s *Summary, format string) error {
	switch format {
	case FormatTable:
		writeSummaryTable(w, s)

		return nil
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		encodeErr := encoder.Encode(s)
		if encodeErr != nil {
			return fmt.Errorf("encode summary: %w", encodeErr)
		}

		return nil
	case FormatYAML:
		data, marshalErr := yaml.Marshal(s)
		if marshalErr != nil {
			return fmt.Errorf("encode summary: %w", marshalErr)
		}

		_, writeErr := w.Write(data)
		if writeErr != nil {
			return fmt.Errorf("write summary: %w", writeErr)
		}

		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func writeSummaryTable(w io.Writer, s *Summary) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)

	tbl.AppendHeader(table.Row{"Metric", "Value"})
	tbl.AppendRows([]table.Row{
		{"Files scanned", humanize.Comma(int64(s.Scanned))},
		{"Changed", humanize.Comma(int64(s.Changed))},
		{"Unchanged", humanize.Comma(int64(s.Unchanged))},
		{"Failed", humanize.Comma(int64(s.Failed))},
		{"Bytes read", humanize.Bytes(uint64(max(s.Bytes, 0)))},
		{"Elapsed", s.Elapsed.Round(time.Millisecond).String()},
	})

	if len(s.Failures) > 0 {
		tbl.AppendSeparator()

		for _, failure := range s.Failures {
			tbl.AppendRow(table.Row{"Failed file", fmt.Sprintf("%s (%s)", failure.Path, failure.Reason)})
		}
	}

	tbl.Render()
}
