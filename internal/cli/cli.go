package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/AreyMadhav/PakSeek/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the flag-level app
// configuration, a boolean indicating if the program should exit cleanly,
// or an ExitError. Merging with the config file and defaulting happen
// later in app.NewApp, so unset flags stay zero here.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("pakseek", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
PakSeek - Browse Unreal Engine packaged assets and their dependencies.

Usage:
  pakseek [options] [SCAN_PATH]

Arguments:
  SCAN_PATH
    Path to a single .pak file or a directory containing .pak files.

Options:
`)
		flagSet.PrintDefaults()
	}

	scanFlag := flagSet.String("scan", "", "Path to the .pak file or directory to scan.")
	sFlag := flagSet.String("s", "", "Path to the .pak file or directory to scan (shorthand).")
	configFlag := flagSet.String("config", "pakseek.hcl", "Path to the HCL configuration file.")
	workersFlag := flagSet.Int("workers", 0, "Number of concurrent archive parse workers. 0 uses the config file or default.")
	exportFlag := flagSet.String("export", "", "Write the dependency map to stdout in this format: 'json', 'dot', 'csv', or 'markdown'.")
	serveFlag := flagSet.Bool("serve", false, "Serve the scan result over HTTP after scanning.")
	portFlag := flagSet.Int("port", 0, "Port for the HTTP API. 0 uses the config file or default.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *scanFlag != "" {
		path = *scanFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "" && logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &app.Config{
		ScanPath:     path,
		ConfigPath:   *configFlag,
		Workers:      *workersFlag,
		ExportFormat: strings.ToLower(*exportFlag),
		Serve:        *serveFlag,
		Port:         *portFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	}, false, nil
}
