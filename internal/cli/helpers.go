//go:build !nofs

package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/Fuabioo/tzkit/internal/chrono"
	"github.com/Fuabioo/tzkit/internal/core"
	"github.com/Fuabioo/tzkit/internal/errors"
)

// outputJSON marshals and prints JSON to stdout.
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return errors.Context(err, "failed to encode JSON")
	}
	return nil
}

// isTerminal checks if the given file descriptor is a TTY.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// loadConfig loads the configuration from the config directory.
func loadConfig() (*core.Config, error) {
	configDir, err := core.ConfigDir()
	if err != nil {
		return nil, errors.Context(err, "failed to get config directory")
	}

	cfg, err := core.LoadConfig(configDir)
	if err != nil {
		return nil, errors.Context(err, "failed to load config")
	}

	return cfg, nil
}

// newLogger builds a console logger on stderr. Stdout is reserved for
// command output and the MCP stdio transport.
func newLogger(level string, debug bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Context(err, fmt.Sprintf("invalid log level %q", level))
	}
	if debug {
		lvl = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// newService loads the configuration and opens the time zone database.
func newService() (*core.Service, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Log.Level, flagDebug)
	if err != nil {
		return nil, err
	}

	return core.NewService(cfg, logger)
}

// printError prints an error to stderr with appropriate formatting.
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// printTable prints rows as a table: boxed on a terminal, tab-aligned
// otherwise so the output stays easy to pipe.
func printTable(rows [][]string, header bool) error {
	if isTerminal(os.Stdout) {
		out, err := pterm.DefaultTable.
			WithHasHeader(header).
			WithBoxed(true).
			WithData(pterm.TableData(rows)).
			Srender()
		if err != nil {
			return errors.Context(err, "failed to render table")
		}
		fmt.Println(out)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, row := range rows {
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	return w.Flush()
}

// printZoned prints a zoned time in the selected output format.
func printZoned(info core.ZonedInfo) error {
	if flagJSON {
		return outputJSON(info)
	}
	if flagQuiet {
		fmt.Println(info.Time)
		return nil
	}

	rows := [][]string{
		{"time", info.Time},
		{"utc", info.UTC},
		{"zone", info.Zone},
		{"abbreviation", info.Abbreviation},
		{"offset", chrono.FormatOffset(info.OffsetSeconds)},
		{"weekday", info.Weekday},
		{"unix", strconv.FormatInt(info.Unix, 10)},
		{"nanos", strconv.FormatInt(int64(info.Nanos), 10)},
	}
	if info.Proto != nil {
		rows = append(rows, []string{"proto", fmt.Sprintf("seconds:%d nanos:%d", info.Proto.Seconds, info.Proto.Nanos)})
	}
	return printTable(rows, false)
}

// formatBytes formats a byte count in human-readable form.
func formatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
