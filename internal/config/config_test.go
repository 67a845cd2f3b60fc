package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/investidata-go/pkg/investidata/lexicon"
	"github.com/ukaji3/investidata-go/pkg/investidata/models"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	v, err := New("")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	cfg := FromViper(v)
	if cfg.TopN != 10 || cfg.LogLevel != "info" || cfg.FoldAccents || cfg.Topic != "summary" {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
}

func TestConfigFileAndEnv(t *testing.T) {
	path := writeFile(t, "investidata.yaml", "top-n: 5\nfold-accents: true\nlog-level: debug\n")
	t.Setenv("INVESTIDATA_TOP_N", "3")
	t.Setenv("INVESTIDATA_TIMEZONE", "UTC")

	v, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	cfg := FromViper(v)

	// Environment takes precedence over the file.
	if cfg.TopN != 3 {
		t.Errorf("TopN = %d, expected 3", cfg.TopN)
	}
	if !cfg.FoldAccents || cfg.LogLevel != "debug" || cfg.Timezone != "UTC" {
		t.Errorf("Unexpected config %+v", cfg)
	}
}

func TestMissingConfigFile(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Expected an error for an explicit missing file")
	}
}

func TestOptions(t *testing.T) {
	tables := writeFile(t, "tables.yaml", "suspicious_apps: [telegram]\n")
	cfg := Config{TopN: 4, FoldAccents: true, TablesPath: tables, Timezone: "America/Bogota"}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options failed: %v", err)
	}
	if opts.TopN != 4 || !opts.FoldAccents {
		t.Errorf("Unexpected options %+v", opts)
	}
	if opts.Location == nil || opts.Location.String() != "America/Bogota" {
		t.Errorf("Location = %v", opts.Location)
	}
	got := opts.KeywordTables()
	if len(got.SuspiciousApps) != 1 || got.SuspiciousApps[0] != "telegram" {
		t.Errorf("SuspiciousApps = %v", got.SuspiciousApps)
	}
	// Keys absent from the file keep their defaults.
	if len(got.Sheets[models.CategoryMessages]) == 0 {
		t.Error("Expected default sheet keywords to survive the merge")
	}
}

func TestOptionsErrors(t *testing.T) {
	if _, err := (Config{Timezone: "Mars/Olympus"}).Options(); err == nil {
		t.Error("Expected an error for an unknown timezone")
	}

	bad := writeFile(t, "tables.yaml", "unknown_key: 1\n")
	_, err := (Config{TablesPath: bad}).Options()
	if !errors.Is(err, lexicon.ErrInvalidTables) {
		t.Errorf("Expected ErrInvalidTables, got %v", err)
	}
}
