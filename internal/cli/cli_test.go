//go:build !nofs

package cli

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/Fuabioo/tzkit/internal/errors"
)

// setupTestEnv points tzkit at an empty config directory and clears the
// environment overrides and global flags for the duration of the test.
func setupTestEnv(t *testing.T) string {
	t.Helper()

	tempDir := t.TempDir()
	for _, key := range []string{"TZKIT_TZDIR", "TZKIT_TZZIP", "TZKIT_DEFAULT_ZONE", "TZKIT_LOG_LEVEL", "TZKIT_MAX_ZONE_COUNT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("TZKIT_CONFIG_DIR", tempDir)

	t.Cleanup(func() {
		flagJSON = false
		flagQuiet = false
		flagZone = ""
		flagDebug = false
		tsFlagNanos = 0
		zonesFlagTree = false
		zonesFlagMaxDepth = 0
	})

	return tempDir
}

// fixedTZif returns a minimal version 1 TZif file with a single offset.
func fixedTZif(abbrev string, offset int32) []byte {
	var b bytes.Buffer
	b.WriteString("TZif")
	b.Write(make([]byte, 16))
	for _, n := range []uint32{0, 0, 0, 0, 1, uint32(len(abbrev) + 1)} {
		_ = binary.Write(&b, binary.BigEndian, n)
	}
	_ = binary.Write(&b, binary.BigEndian, offset)
	b.WriteByte(0)
	b.WriteByte(0)
	b.WriteString(abbrev)
	b.WriteByte(0)
	return b.Bytes()
}

// createZoneDir creates a zoneinfo directory with a few fixed-offset zones.
func createZoneDir(t *testing.T) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "zoneinfo")
	zones := map[string][]byte{
		"Europe/Alpha": fixedTZif("ALP", 3600),
		"Europe/Beta":  fixedTZif("BET", 7200),
		"Asia/Gamma":   fixedTZif("GAM", 28800),
	}
	for name, data := range zones {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create zone dir: %v", err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatalf("failed to write zone: %v", err)
		}
	}
	return root
}

// executeCommand executes a cobra command with args and returns output.
// Captures real os.Stdout/os.Stderr since CLI commands use fmt.Printf.
func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	// Save and restore original stdout/stderr
	oldStdout := os.Stdout
	oldStderr := os.Stderr
	defer func() {
		os.Stdout = oldStdout
		os.Stderr = oldStderr
	}()

	// Create pipes
	stdoutR, stdoutW, pipeErr := os.Pipe()
	if pipeErr != nil {
		t.Fatalf("failed to create stdout pipe: %v", pipeErr)
	}
	stderrR, stderrW, pipeErr := os.Pipe()
	if pipeErr != nil {
		t.Fatalf("failed to create stderr pipe: %v", pipeErr)
	}

	os.Stdout = stdoutW
	os.Stderr = stderrW

	// Also set cobra's output to the pipes
	cmd.SetOut(stdoutW)
	cmd.SetErr(stderrW)
	cmd.SetArgs(args)

	// Execute in goroutine so pipe reads don't block
	errChan := make(chan error, 1)
	go func() {
		errChan <- cmd.Execute()
		stdoutW.Close()
		stderrW.Close()
	}()

	// Read all output
	var stdoutBuf, stderrBuf bytes.Buffer
	stdoutDone := make(chan struct{})
	stderrDone := make(chan struct{})
	go func() {
		_, _ = io.Copy(&stdoutBuf, stdoutR)
		close(stdoutDone)
	}()
	go func() {
		_, _ = io.Copy(&stderrBuf, stderrR)
		close(stderrDone)
	}()

	err = <-errChan
	<-stdoutDone
	<-stderrDone

	return stdoutBuf.String(), stderrBuf.String(), err
}

// newTestRoot returns a bare parent command holding sub.
func newTestRoot(sub *cobra.Command) *cobra.Command {
	cmd := &cobra.Command{Use: "test", SilenceUsage: true, SilenceErrors: true}
	cmd.AddCommand(sub)
	return cmd
}

func TestHelpers_OutputJSON(t *testing.T) {
	data := map[string]interface{}{
		"key":   "value",
		"count": 42,
	}

	// Redirect stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	err := outputJSON(data)
	if err != nil {
		t.Fatalf("outputJSON() error = %v", err)
	}

	w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	buf.ReadFrom(r)

	var result map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}

	if result["key"] != "value" {
		t.Errorf("key = %v, want value", result["key"])
	}
	if int(result["count"].(float64)) != 42 {
		t.Errorf("count = %v, want 42", result["count"])
	}
}

func TestHelpers_PrintError(t *testing.T) {
	oldStderr := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	printError(errors.Adhoc("disk full").Path("/tmp/zoneinfo.zip").Context(errors.Adhoc("failed to pack")))

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)

	want := "Error: failed to pack: /tmp/zoneinfo.zip: disk full\n"
	if got := buf.String(); got != want {
		t.Errorf("printError() wrote %q, want %q", got, want)
	}
}

func TestHelpers_NewLogger(t *testing.T) {
	logger, err := newLogger("warn", false)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	if logger.Core().Enabled(-1) {
		t.Error("debug should be disabled at warn level")
	}

	logger, err = newLogger("warn", true)
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	if !logger.Core().Enabled(-1) {
		t.Error("--debug should enable debug logs")
	}

	if _, err := newLogger("loud", false); err == nil || !strings.HasPrefix(err.Error(), `invalid log level "loud": `) {
		t.Errorf("newLogger(loud) error = %v, want invalid log level", err)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		want  string
		bytes uint64
	}{
		{
			name:  "bytes",
			bytes: 512,
			want:  "512 B",
		},
		{
			name:  "kilobytes",
			bytes: 1024,
			want:  "1.0 KiB",
		},
		{
			name:  "megabytes",
			bytes: 3 * 1024 * 1024 / 2,
			want:  "1.5 MiB",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	setupTestEnv(t)

	stdout, _, err := executeCommand(t, newTestRoot(versionCmd), "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	if !strings.Contains(stdout, "tzkit version") {
		t.Errorf("output missing version info: %s", stdout)
	}
}

func TestLookupCommand(t *testing.T) {
	setupTestEnv(t)

	stdout, _, err := executeCommand(t, newTestRoot(lookupCmd), "lookup", "Asia/Kolkata")
	if err != nil {
		t.Fatalf("lookup command failed: %v", err)
	}

	for _, want := range []string{"Asia/Kolkata", "system", "IST", "+05:30"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q: %s", want, stdout)
		}
	}
}

func TestLookupCommand_JSON(t *testing.T) {
	setupTestEnv(t)
	flagJSON = true

	stdout, _, err := executeCommand(t, newTestRoot(lookupCmd), "lookup", "Asia/Tokyo")
	if err != nil {
		t.Fatalf("lookup command failed: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\n%s", err, stdout)
	}
	if result["name"] != "Asia/Tokyo" {
		t.Errorf("name = %v, want Asia/Tokyo", result["name"])
	}
	if result["offset_seconds"] != float64(32400) {
		t.Errorf("offset_seconds = %v, want 32400", result["offset_seconds"])
	}
}

func TestLookupCommand_UnknownZone(t *testing.T) {
	setupTestEnv(t)

	_, _, err := executeCommand(t, newTestRoot(lookupCmd), "lookup", "Mars/Base")
	if err == nil {
		t.Fatal("expected error for unknown zone")
	}
	want := "failed to find timezone 'Mars/Base' in time zone database"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestZonesCommand(t *testing.T) {
	setupTestEnv(t)
	t.Setenv("TZKIT_TZDIR", createZoneDir(t))

	stdout, _, err := executeCommand(t, newTestRoot(zonesCmd), "zones", "Europe/")
	if err != nil {
		t.Fatalf("zones command failed: %v", err)
	}

	if !strings.HasPrefix(stdout, "Europe/Alpha\nEurope/Beta\n") {
		t.Errorf("unexpected zone list: %q", stdout)
	}
	if strings.Contains(stdout, "Asia/Gamma") {
		t.Errorf("prefix filter ignored: %q", stdout)
	}
	if !strings.Contains(stdout, "2 zones") {
		t.Errorf("output missing summary: %q", stdout)
	}
}

func TestZonesCommand_Tree(t *testing.T) {
	setupTestEnv(t)
	t.Setenv("TZKIT_TZDIR", createZoneDir(t))

	stdout, _, err := executeCommand(t, newTestRoot(zonesCmd), "zones", "--tree")
	if err != nil {
		t.Fatalf("zones command failed: %v", err)
	}

	for _, want := range []string{"Asia/", "Europe/", "Alpha", "Gamma", "2 groups, 3 zones"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("tree output missing %q:\n%s", want, stdout)
		}
	}
}

func TestDateCommand(t *testing.T) {
	setupTestEnv(t)

	stdout, _, err := executeCommand(t, newTestRoot(dateCmd), "date", "2024-02-29")
	if err != nil {
		t.Fatalf("date command failed: %v", err)
	}
	if stdout != "2024-02-29 is a valid date\n" {
		t.Errorf("unexpected output: %q", stdout)
	}

	_, _, err = executeCommand(t, newTestRoot(dateCmd), "date", "2023-02-29")
	if err == nil {
		t.Fatal("expected error for 2023-02-29")
	}
	want := `invalid date "2023-02-29": parameter 'day' with value 29 is not in the required range of 1..=28`
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestTSCommand(t *testing.T) {
	setupTestEnv(t)
	flagZone = "America/New_York"

	stdout, _, err := executeCommand(t, newTestRoot(tsCmd), "ts", "1627680004", "--nanos", "123000000")
	if err != nil {
		t.Fatalf("ts command failed: %v", err)
	}

	for _, want := range []string{
		"2021-07-30T17:20:04.123-04:00[America/New_York]",
		"2021-07-30T21:20:04.123Z",
		"EDT",
		"-04:00",
		"Friday",
		"seconds:1627680004 nanos:123000000",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestTSCommand_RFC3339Quiet(t *testing.T) {
	setupTestEnv(t)
	flagQuiet = true
	flagZone = "Asia/Tokyo"

	stdout, _, err := executeCommand(t, newTestRoot(tsCmd), "ts", "2021-07-30T21:20:04Z")
	if err != nil {
		t.Fatalf("ts command failed: %v", err)
	}
	if stdout != "2021-07-31T06:20:04+09:00[Asia/Tokyo]\n" {
		t.Errorf("unexpected output: %q", stdout)
	}
}

func TestTSCommand_OutOfRange(t *testing.T) {
	setupTestEnv(t)

	_, _, err := executeCommand(t, newTestRoot(tsCmd), "ts", "253402207201")
	if err == nil {
		t.Fatal("expected range error")
	}
	want := "parameter 'second' with value 253402207201 is not in the required range of -377705116800..=253402207200"
	if err.Error() != want {
		t.Errorf("error = %q, want %q", err, want)
	}
}

func TestUUIDCommand(t *testing.T) {
	setupTestEnv(t)
	flagJSON = true

	stdout, _, err := executeCommand(t, newTestRoot(uuidCmd), "uuid", "017f22e2-79b0-7cc3-98c4-dc0c0c07398f")
	if err != nil {
		t.Fatalf("uuid command failed: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(stdout), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\n%s", err, stdout)
	}
	if result["utc"] != "2022-02-22T19:22:22Z" {
		t.Errorf("utc = %v, want 2022-02-22T19:22:22Z", result["utc"])
	}
}

func TestNowCommand(t *testing.T) {
	setupTestEnv(t)
	flagQuiet = true
	flagZone = "Asia/Kolkata"

	stdout, _, err := executeCommand(t, newTestRoot(nowCmd), "now")
	if err != nil {
		t.Fatalf("now command failed: %v", err)
	}
	if !strings.HasSuffix(stdout, "+05:30[Asia/Kolkata]\n") {
		t.Errorf("unexpected output: %q", stdout)
	}
}

func TestPackUnpackCommands(t *testing.T) {
	setupTestEnv(t)

	zoneDir := createZoneDir(t)
	outDir := t.TempDir()
	zipPath := filepath.Join(outDir, "zoneinfo.zip")

	stdout, _, err := executeCommand(t, newTestRoot(packCmd), "pack", zoneDir, zipPath)
	if err != nil {
		t.Fatalf("pack command failed: %v", err)
	}
	if !strings.HasPrefix(stdout, "Packed 3 zones") {
		t.Errorf("unexpected pack output: %q", stdout)
	}

	// Packing again rotates the previous archive.
	flagJSON = true
	stdout, _, err = executeCommand(t, newTestRoot(packCmd), "pack", zoneDir, zipPath)
	if err != nil {
		t.Fatalf("second pack failed: %v", err)
	}
	var packed map[string]interface{}
	if err := json.Unmarshal([]byte(stdout), &packed); err != nil {
		t.Fatalf("failed to parse JSON: %v\n%s", err, stdout)
	}
	if packed["backup_path"] != filepath.Join(outDir, "zoneinfo.bak.zip") {
		t.Errorf("backup_path = %v", packed["backup_path"])
	}
	flagJSON = false

	destDir := filepath.Join(t.TempDir(), "extracted")
	stdout, _, err = executeCommand(t, newTestRoot(unpackCmd), "unpack", zipPath, destDir)
	if err != nil {
		t.Fatalf("unpack command failed: %v", err)
	}
	if !strings.HasPrefix(stdout, "Extracted 3 zones") {
		t.Errorf("unexpected unpack output: %q", stdout)
	}
	if _, err := os.Stat(filepath.Join(destDir, "Europe", "Alpha")); err != nil {
		t.Errorf("extracted zone missing: %v", err)
	}

	// The archive is usable as a database.
	t.Setenv("TZKIT_TZZIP", zipPath)
	flagQuiet = true
	flagZone = "Asia/Gamma"
	stdout, _, err = executeCommand(t, newTestRoot(tsCmd), "ts", "0")
	if err != nil {
		t.Fatalf("ts against packed archive failed: %v", err)
	}
	if stdout != "1970-01-01T08:00:00+08:00[Asia/Gamma]\n" {
		t.Errorf("unexpected output: %q", stdout)
	}
}

func TestPackCommand_MissingSource(t *testing.T) {
	setupTestEnv(t)

	missing := filepath.Join(t.TempDir(), "nope")
	_, _, err := executeCommand(t, newTestRoot(packCmd), "pack", missing, filepath.Join(t.TempDir(), "out.zip"))
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if !strings.HasPrefix(err.Error(), missing+": ") {
		t.Errorf("error = %q, want path prefix %q", err, missing)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	configDir := setupTestEnv(t)
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("tz: [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	_, _, err := executeCommand(t, newTestRoot(nowCmd), "now")
	if err == nil {
		t.Fatal("expected config error")
	}
	want := "failed to load config: " + filepath.Join(configDir, "config.yaml") + ": "
	if !strings.HasPrefix(err.Error(), want) {
		t.Errorf("error = %q, want prefix %q", err, want)
	}
}
