package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/jerry/internal/config"
	"github.com/vovakirdan/jerry/internal/session"
	"github.com/vovakirdan/jerry/internal/storage"
)

// When JERRY_TEST_MAIN is set the test binary acts as the jerry binary,
// with the arguments taken from that variable.
func TestMain(m *testing.M) {
	if args, ok := os.LookupEnv("JERRY_TEST_MAIN"); ok {
		os.Args = append([]string{"jerry"}, strings.Fields(args)...)
		main()
		os.Exit(0)
	}
	os.Exit(m.Run())
}

// runJerry runs the binary in a fresh home with the given extra env.
func runJerry(t *testing.T, args string, env ...string) (stdout, stderr string, err error) {
	t.Helper()
	home := t.TempDir()

	cmd := exec.Command(os.Args[0])
	cmd.Dir = home
	cmd.Env = append(os.Environ(),
		"JERRY_TEST_MAIN="+args,
		"HOME="+home,
		"JERRY_LOG_FILE="+filepath.Join(home, "jerry.log"),
		"JERRY_SCORE_FILE="+filepath.Join(home, "best.txt"),
		"JERRY_HISTORY_DB="+filepath.Join(home, "runs.db"),
		"JERRY_MUTE=true",
	)
	cmd.Env = append(cmd.Env, env...)

	var out, errOut bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err = cmd.Run()
	return out.String(), errOut.String(), err
}

func TestExitStatusZero(t *testing.T) {
	out, stderr, err := runJerry(t, "config")
	if err != nil {
		t.Fatalf("expected exit status 0, got %v (stderr %q)", err, stderr)
	}
	if !strings.Contains(out, "splash:") {
		t.Errorf("expected the default configuration, got %q", out)
	}
}

func TestExitStatusOneOnMissingAssets(t *testing.T) {
	empty := t.TempDir()
	_, stderr, err := runJerry(t, "", "JERRY_ASSETS_DIR="+empty)

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected a non-zero exit, got %v", err)
	}
	if exitErr.ExitCode() != 1 {
		t.Errorf("expected exit status 1, got %d", exitErr.ExitCode())
	}
	if !strings.Contains(stderr, "session aborted") {
		t.Errorf("expected the abort reason on stderr, got %q", stderr)
	}
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	var buf bytes.Buffer
	configCmd.SetOut(&buf)
	configCmd.Run(configCmd, nil)

	if buf.String() != string(config.DefaultYAML()) {
		t.Error("expected the embedded default configuration")
	}
}

func TestOpenLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "jerry.log")
	logger, closer, err := openLogger(config.LogConfig{File: path, Level: "debug"})
	if err != nil {
		t.Fatalf("openLogger: %v", err)
	}
	logger.Debug("hello")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	if _, _, err := openLogger(config.LogConfig{Level: "loud"}); err == nil {
		t.Error("expected an error for an unknown level")
	}
}

// scoresEnv points the scores command at a fresh home and returns the
// history database path.
func scoresEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	db := filepath.Join(home, "runs.db")
	t.Setenv("HOME", home)
	t.Setenv("JERRY_SCORE_FILE", filepath.Join(home, "best.txt"))
	t.Setenv("JERRY_HISTORY_DB", db)
	t.Chdir(home)
	return db
}

func TestScoresCommand(t *testing.T) {
	scoresEnv(t)

	var buf bytes.Buffer
	scoresCmd.SetOut(&buf)
	if err := scoresCmd.RunE(scoresCmd, nil); err != nil {
		t.Fatalf("scores: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Best: 0") {
		t.Errorf("expected best 0, got %q", out)
	}
	if !strings.Contains(out, "No runs recorded yet") {
		t.Errorf("expected the empty history message, got %q", out)
	}
}

func TestScoresClear(t *testing.T) {
	db := scoresEnv(t)

	store, err := storage.Open(db)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []int{3, 7} {
		if _, err := store.SaveScore(session.GameID, s); err != nil {
			t.Fatal(err)
		}
	}
	store.Close()

	flagClear = true
	t.Cleanup(func() { flagClear = false })

	var buf bytes.Buffer
	scoresCmd.SetOut(&buf)
	if err := scoresCmd.RunE(scoresCmd, nil); err != nil {
		t.Fatalf("scores --clear: %v", err)
	}
	if !strings.Contains(buf.String(), "Run history cleared") {
		t.Errorf("expected a confirmation, got %q", buf.String())
	}

	store, err = storage.Open(db)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	runs, err := store.TopScores(session.GameID, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs after clearing, got %d", len(runs))
	}
}
