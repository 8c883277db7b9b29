package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cognicore/wordfreq/internal/textio"
	"github.com/cognicore/wordfreq/pkg/wordfreq/analyze"
	"github.com/cognicore/wordfreq/pkg/wordfreq/cloud"
	"github.com/cognicore/wordfreq/pkg/wordfreq/config"
	"github.com/cognicore/wordfreq/pkg/wordfreq/report"
	"github.com/cognicore/wordfreq/pkg/wordfreq/stopword"
)

// options is the fully resolved run configuration: defaults, then the
// settings file, then explicitly passed flags.
type options struct {
	settings config.Settings
	stops    stopword.Set
	file     string
	htmlIn   bool
	noViz    bool
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func parseArgs(args []string) (*options, error) {
	def := config.DefaultSettings()

	fs := flag.NewFlagSet("wordfreq", flag.ContinueOnError)
	var (
		file         = fs.String("file", "", "Path to a text file as input (omit to type text in the terminal)")
		htmlIn       = fs.Bool("html", false, "Treat the input file as HTML and strip markup before analysis")
		top          = fs.Int("top", def.Top, "Number of most frequent words to display and save")
		minLen       = fs.Int("min-len", def.MinTokenLen, "Minimum token length kept by the filter")
		output       = fs.String("output", def.Output, "Output file for the top-frequency list")
		cloudOut     = fs.String("cloud", def.CloudOutput, "Output PNG for the word cloud")
		fontFile     = fs.String("font", "", "TTF font file for the word cloud")
		stoplistPath = fs.String("stoplist", "", "Custom stoplist YAML file (replaces the built-in lists)")
		extend       = fs.Bool("stoplist-extend", false, "Union the custom stoplist with the built-in lists")
		configPath   = fs.String("config", "", "YAML settings file")
		noViz        = fs.Bool("no-viz", false, "Disable word cloud rendering")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	loader := config.Loader{
		SettingsPath: *configPath,
		StoplistPath: *stoplistPath,
		Extend:       *extend,
	}
	comp, err := loader.Load()
	if err != nil {
		return nil, err
	}

	// Flags beat the settings file, but only when actually passed.
	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	s := comp.Settings
	if set["top"] {
		s.Top = *top
	}
	if set["min-len"] {
		s.MinTokenLen = *minLen
	}
	if set["output"] {
		s.Output = *output
	}
	if set["cloud"] {
		s.CloudOutput = *cloudOut
	}
	if set["font"] {
		s.FontFile = *fontFile
	}

	return &options{
		settings: s,
		stops:    comp.Stops,
		file:     *file,
		htmlIn:   *htmlIn,
		noViz:    *noViz,
	}, nil
}

func run(opts *options, stdin io.Reader, stdout io.Writer) error {
	text, err := readInput(opts, stdin, stdout)
	if err != nil {
		return err
	}

	// Validates the ranking size before anything is written.
	analyzer, err := analyze.New(opts.stops, opts.settings.MinTokenLen, opts.settings.Top)
	if err != nil {
		return err
	}

	res, err := analyzer.Analyze(text)
	if err != nil {
		return err
	}

	printSummary(stdout, res)

	if err := report.WriteFile(opts.settings.Output, res); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "\nSaved ranking to: %s\n", opts.settings.Output)

	if opts.noViz {
		return nil
	}
	if res.Empty() {
		fmt.Fprintln(stdout, "Skipping word cloud: no tokens to render")
		return nil
	}

	// Without an explicitly configured font the cloud is optional: a
	// missing default asset downgrades to a skip, not a failed run.
	if opts.settings.FontFile == "" {
		if _, err := os.Stat(cloud.DefaultFontFile); err != nil {
			fmt.Fprintf(stdout, "Skipping word cloud: font %s not found (set one with -font)\n", cloud.DefaultFontFile)
			return nil
		}
	}

	renderer := cloud.New(cloud.Options{FontFile: opts.settings.FontFile})
	if err := renderer.SavePNG(opts.settings.CloudOutput, res.Freq); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Saved word cloud to: %s\n", opts.settings.CloudOutput)
	return nil
}

func readInput(opts *options, stdin io.Reader, stdout io.Writer) (string, error) {
	switch {
	case opts.file != "" && opts.htmlIn:
		return textio.ReadHTMLFile(opts.file)
	case opts.file != "":
		return textio.ReadFile(opts.file)
	default:
		return textio.Prompt(stdin, stdout)
	}
}

func printSummary(w io.Writer, res *analyze.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== RESULTS ===")
	fmt.Fprintf(w, "Characters (including spaces): %d\n", res.CharCount)
	fmt.Fprintf(w, "Words (after cleaning & stopword removal): %d\n", res.TokenCount)
	fmt.Fprintf(w, "\nTop %d Most Frequent Words:\n", res.TopN)

	if res.Empty() {
		fmt.Fprintln(w, "no data")
		return
	}
	for _, entry := range res.Top {
		fmt.Fprintf(w, "%-15s %d\n", entry.Token, entry.Count)
	}
}
