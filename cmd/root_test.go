package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestDifficultyValue(t *testing.T) {
	var value difficultyValue
	if err := value.Set(" Hard "); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if value.String() != "hard" {
		t.Fatalf("expected hard, got %q", value.String())
	}
	if err := value.Set(""); err == nil {
		t.Fatal("expected an error for an empty difficulty")
	}
}

func TestNewLogger(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Fatal("expected an error for an unknown level")
	}

	path := filepath.Join(t.TempDir(), "termsweep.log")
	logger, closeLog, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	if logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %v", logger.GetLevel())
	}
	logger.WithField("session", "abc").Debug("hello")
	closeLog()

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}
	if !strings.Contains(string(contents), "hello") || !strings.Contains(string(contents), "session=abc") {
		t.Fatalf("unexpected log contents %q", contents)
	}
}
