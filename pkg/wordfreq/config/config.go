package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
	"github.com/cognicore/wordfreq/pkg/wordfreq/stopword"
)

// Settings is the file-based analyzer configuration. Any field left
// zero in the file keeps its default; CLI flags override both.
type Settings struct {
	Top         int    `yaml:"top"`
	MinTokenLen int    `yaml:"min_token_len"`
	Output      string `yaml:"output"`
	CloudOutput string `yaml:"cloud_output"`
	FontFile    string `yaml:"font_file"`
	Stoplist    string `yaml:"stoplist"`
}

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		Top:         10,
		MinTokenLen: stopword.DefaultMinTokenLen,
		Output:      "outputs/word_frequency_top.txt",
		CloudOutput: "outputs/wordcloud.png",
	}
}

// LoadSettings reads a YAML settings file and overlays it on the
// defaults. Explicitly negative or zero ranking sizes in the file are
// rejected as invalid configuration.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings %s: %w", path, err)
	}

	var in Settings
	if err := yaml.Unmarshal(data, &in); err != nil {
		return s, fmt.Errorf("parse settings %s: %w", path, err)
	}

	if in.Top < 0 {
		return s, fmt.Errorf("settings %s: top must not be negative, got %d: %w", path, in.Top, internalerr.ErrInvalidConfig)
	}
	if in.MinTokenLen < 0 {
		return s, fmt.Errorf("settings %s: min_token_len must not be negative, got %d: %w", path, in.MinTokenLen, internalerr.ErrInvalidConfig)
	}

	if in.Top > 0 {
		s.Top = in.Top
	}
	if in.MinTokenLen > 0 {
		s.MinTokenLen = in.MinTokenLen
	}
	if in.Output != "" {
		s.Output = in.Output
	}
	if in.CloudOutput != "" {
		s.CloudOutput = in.CloudOutput
	}
	if in.FontFile != "" {
		s.FontFile = in.FontFile
	}
	if in.Stoplist != "" {
		s.Stoplist = in.Stoplist
	}
	return s, nil
}

// Stoplist is the stopword list file format: a YAML document with a
// single `terms` list.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stoplist %s: %w", path, err)
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, fmt.Errorf("parse stoplist %s: %w", path, err)
	}

	return &sl, nil
}

// Loader assembles the run configuration: settings file, stoplist file
// and the resulting stopword set.
type Loader struct {
	SettingsPath string
	StoplistPath string // overrides Settings.Stoplist when set
	Extend       bool   // union the loaded stoplist with the built-ins
}

// Components holds everything the CLI needs to construct the pipeline.
type Components struct {
	Settings Settings
	Stops    stopword.Set
}

// Load reads the configured files and builds the stopword set. With no
// stoplist configured, the built-in bilingual set is used.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{Settings: DefaultSettings()}

	if l.SettingsPath != "" {
		s, err := LoadSettings(l.SettingsPath)
		if err != nil {
			return nil, err
		}
		comp.Settings = s
	}

	stoplistPath := comp.Settings.Stoplist
	if l.StoplistPath != "" {
		stoplistPath = l.StoplistPath
	}

	if stoplistPath == "" {
		comp.Stops = stopword.Default()
		return comp, nil
	}

	sl, err := LoadStoplist(stoplistPath)
	if err != nil {
		return nil, err
	}
	comp.Stops = stopword.New(sl.Terms)
	if l.Extend {
		comp.Stops = comp.Stops.Union(stopword.Default())
	}
	return comp, nil
}
