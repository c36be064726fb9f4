// Package integration runs the larder binary end to end.
package integration

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	// larderBin is the path to the built larder binary.
	larderBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot walks up from the working directory to the go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// CmdResult holds the result of a larder invocation.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// ItemRecord is one line of items.jsonl.
type ItemRecord struct {
	ItemID          string `json:"item_id"`
	Position        int    `json:"position"`
	Name            string `json:"name"`
	CatalogueNumber int    `json:"catalogue_number"`
	Quantity        int    `json:"quantity"`
	ProductionDate  string `json:"production_date"`
	ExpiryDate      string `json:"expiry_date"`
	MinTemperature  int    `json:"min_temperature"`
	MaxTemperature  int    `json:"max_temperature"`
	Price           int    `json:"price"`
}

// TestEnv provides an isolated config and data directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
}

// NewTestEnv creates an isolated environment with a config.yaml pointing at
// its own data directory.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()
	requireBinary(t)

	tempDir := t.TempDir()
	env := &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  filepath.Join(tempDir, "config"),
		DataDir: filepath.Join(tempDir, "data"),
	}
	writeConfigYAML(t, env.Config, "backend: sqlite\ndata_dir: "+env.DataDir+"\n")
	return env
}

// Run executes larder with the environment's --config-dir.
func (e *TestEnv) Run(args ...string) CmdResult {
	e.t.Helper()
	return runLarder(e.t, nil, "", append([]string{"--config-dir", e.Config}, args...)...)
}

// MustRun executes larder and fails the test on a non-zero exit.
func (e *TestEnv) MustRun(args ...string) CmdResult {
	e.t.Helper()
	res := e.Run(args...)
	if res.ExitCode != 0 {
		e.t.Fatalf("larder %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, res.ExitCode, res.Stdout, res.Stderr)
	}
	return res
}

// Items reads the persisted items.jsonl.
func (e *TestEnv) Items() []ItemRecord {
	e.t.Helper()
	return ReadJSONLFile[ItemRecord](e.t, filepath.Join(e.DataDir, "items.jsonl"))
}

func requireBinary(t *testing.T) {
	t.Helper()
	if buildErr != nil {
		t.Fatalf("failed to build larder: %v", buildErr)
	}
	if larderBin == "" {
		t.Fatal("larder binary not built")
	}
}

// cleanEnv returns os.Environ() without LARDER_* and XDG_* variables.
func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "LARDER_") || strings.HasPrefix(kv, "XDG_") {
			continue
		}
		env = append(env, kv)
	}
	return env
}

// runLarder executes the binary with extra environment entries in workDir.
func runLarder(t *testing.T, extraEnv []string, workDir string, args ...string) CmdResult {
	t.Helper()
	requireBinary(t)

	cmd := exec.Command(larderBin, args...)
	cmd.Env = append(cleanEnv(), extraEnv...)
	if workDir != "" {
		cmd.Dir = workDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	code := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("run larder: %v", err)
		}
		code = exitErr.ExitCode()
	}
	return CmdResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: code}
}

// writeConfigYAML writes config.yaml in configDir.
func writeConfigYAML(t *testing.T, configDir, content string) {
	t.Helper()
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, s string) T {
	t.Helper()
	var v T
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", s, err)
	}
	return v
}

// ReadJSONLFile reads a JSONL file (one JSON object per line) into a slice.
func ReadJSONLFile[T any](t *testing.T, path string) []T {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open JSONL file %s: %v", path, err)
	}
	defer f.Close()

	var out []T
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec T
		if err := json.Unmarshal(line, &rec); err != nil {
			t.Fatalf("failed to parse JSONL line in %s: %v", path, err)
		}
		out = append(out, rec)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to scan JSONL file %s: %v", path, err)
	}
	return out
}
