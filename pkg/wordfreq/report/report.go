package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cognicore/wordfreq/pkg/wordfreq/analyze"
)

const (
	header    = "Top Word Frequencies"
	underline = "===================="
	noData    = "no data"
)

// Write renders the ranking as plain text: a fixed two-line header,
// then one "<token>: <count>" line per ranked entry, newline
// terminated. An empty ranking produces an explicit "no data" line so
// the file is never ambiguous about whether the run happened.
func Write(w io.Writer, res *analyze.Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, header)
	fmt.Fprintln(bw, underline)

	if res.Empty() {
		fmt.Fprintln(bw, noData)
		return bw.Flush()
	}

	for _, entry := range res.Top {
		fmt.Fprintf(bw, "%s: %d\n", entry.Token, entry.Count)
	}
	return bw.Flush()
}

// WriteFile writes the report to path, creating parent directories and
// overwriting any existing file. Write and close failures are surfaced
// with the path attached; nothing is retried.
func WriteFile(path string, res *analyze.Result) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report %s: %w", path, err)
	}

	if err := Write(f, res); err != nil {
		f.Close()
		return fmt.Errorf("write report %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close report %s: %w", path, err)
	}
	return nil
}
