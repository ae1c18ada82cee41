package config

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// ProgramName is used in usage output and as the flag set name.
const ProgramName = "settings2markdown"

// ParseFlags parses command-line arguments (without the program name).
//
// Flags:
//
//	-locale collation locale for row names (BCP 47 tag, POSIX name or C)
//	-format output format: markdown or html
//	-only-enabled drop rows whose "enabled" key is false
//	-o output file path (default stdout)
//	-copy also copy the rendered table to the clipboard
//	-log-level log level for stderr diagnostics
//	-c/-config json file path with configs
//	-version print build info and exit
//
// Exactly one positional argument, the settings file path, is expected
// unless -version is given. Flags must precede the positional argument.
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(args, os.Stderr)
}

// flagValues holds the destinations bound by [newFlagSet].
type flagValues struct {
	locale         string
	format         string
	onlyEnabled    bool
	outputPath     string
	clipboard      bool
	logLevel       string
	jsonConfigPath string
	showVersion    bool
}

func newFlagSet(output io.Writer) (*flag.FlagSet, *flagValues) {
	v := &flagValues{}

	fs := flag.NewFlagSet(ProgramName, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] <settings-file>\n\nFlags:\n", ProgramName)
		fs.PrintDefaults()
	}

	fs.StringVar(&v.locale, "locale", "", "Collation locale for row names (e.g. en, sv_SE.UTF-8, C)")
	fs.StringVar(&v.format, "format", "", "Output format: markdown or html")
	fs.BoolVar(&v.onlyEnabled, "only-enabled", false, "Drop rows whose \"enabled\" key is false")
	fs.StringVar(&v.outputPath, "o", "", "Output file path (default stdout)")
	fs.BoolVar(&v.clipboard, "copy", false, "Also copy the rendered table to the clipboard")
	fs.StringVar(&v.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&v.jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&v.jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.BoolVar(&v.showVersion, "version", false, "Print build info and exit")

	return fs, v
}

// PrintUsage writes the usage text to w. main calls it for argument count
// errors (missing or extra settings path), which the flag package does not
// report on its own.
func PrintUsage(w io.Writer) {
	fs, _ := newFlagSet(w)
	fs.Usage()
}

func parseFlags(args []string, output io.Writer) (*StructuredConfig, error) {
	fs, v := newFlagSet(output)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var settingsPath string
	switch positional := fs.Args(); {
	case len(positional) > 1:
		return nil, fmt.Errorf("%w: got %d", ErrTooManyArguments, len(positional))
	case len(positional) == 1:
		settingsPath = positional[0]
	}

	return &StructuredConfig{
		Render: Render{
			Locale:      v.locale,
			Format:      v.format,
			OnlyEnabled: v.onlyEnabled,
		},
		Output: Output{
			Path:      v.outputPath,
			Clipboard: v.clipboard,
		},
		Log: Log{
			Level: v.logLevel,
		},
		SettingsPath: settingsPath,
		ShowVersion:  v.showVersion,
		JSONFilePath: v.jsonConfigPath,
	}, nil
}
