package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizapp/internal/testutil"
)

func writeConfig(t *testing.T, root, body string) string {
	t.Helper()
	path := ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestLoadConfigFile verifies settings are read and paths resolved against the root.
func TestLoadConfigFile(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, `version: 1
questions_file: "quizzes/geo.yml"
ui: " Plain "
no_color: true
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI != UIPlain {
		t.Fatalf("expected plain ui, got %q", cfg.UI)
	}
	if !cfg.NoColor {
		t.Fatalf("expected no_color to be set")
	}
	want := filepath.Join(root, "quizzes", "geo.yml")
	if cfg.QuestionsFile != want {
		t.Fatalf("expected questions file %q, got %q", want, cfg.QuestionsFile)
	}
	if cfg.Path != path || cfg.Root != root {
		t.Fatalf("unexpected path/root: %q %q", cfg.Path, cfg.Root)
	}
}

// TestLoadDefaultsWithoutFile verifies defaults apply when no config exists.
func TestLoadDefaultsWithoutFile(t *testing.T) {
	testutil.Chdir(t, t.TempDir())
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI != UIAuto || cfg.QuestionsFile != "" || cfg.NoColor {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

// TestLoadEnvOverrides verifies QUIZ_* variables override the file.
func TestLoadEnvOverrides(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "version: 1\nui: live\n")
	t.Setenv("QUIZ_UI", "plain")
	t.Setenv("QUIZ_NO_COLOR", "true")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.UI != UIPlain || !cfg.NoColor {
		t.Fatalf("expected env overrides, got %+v", cfg)
	}
}

// TestLoadDotEnv verifies a .env file in the root feeds overrides.
func TestLoadDotEnv(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "version: 1\n")
	if err := os.WriteFile(filepath.Join(root, EnvFileName), []byte("QUIZ_QUESTIONS_FILE=env.yml\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	t.Setenv("QUIZ_QUESTIONS_FILE", "")
	os.Unsetenv("QUIZ_QUESTIONS_FILE")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.QuestionsFile != filepath.Join(root, "env.yml") {
		t.Fatalf("expected questions file from .env, got %q", cfg.QuestionsFile)
	}
}

// TestLoadRejectsInvalidValues verifies validation and strict keys.
func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{name: "bad ui", body: "version: 1\nui: fancy\n", want: "invalid mode"},
		{name: "bad version", body: "version: 2\n", want: "unsupported version"},
		{name: "unknown key", body: "version: 1\nshuffle: true\n", want: "decode config"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tc.body)
			_, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected %q error, got %v", tc.want, err)
			}
		})
	}
}

// TestFindConfigPathSearchesParents verifies upward discovery.
func TestFindConfigPathSearchesParents(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "version: 1\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	found, err := FindConfigPath(nested)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if found != path {
		t.Fatalf("expected %q, got %q", path, found)
	}
	if RootFromConfigPath(found) != root {
		t.Fatalf("expected root %q, got %q", root, RootFromConfigPath(found))
	}
}

// TestResolveConfigPathMissing verifies a missing config is not an error.
func TestResolveConfigPathMissing(t *testing.T) {
	dir := t.TempDir()
	testutil.Chdir(t, dir)
	path, err := ResolveConfigPath("")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if path != "" {
		t.Fatalf("expected empty path, got %q", path)
	}
	if _, err := FindConfigPath(dir); !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

// TestScaffoldWritesFiles verifies scaffold output and overwrite protection.
func TestScaffoldWritesFiles(t *testing.T) {
	root := t.TempDir()
	configPath := ConfigPath(root)
	questionsPath, err := Scaffold(configPath, []byte("version: 1\n"))
	if err != nil {
		t.Fatalf("scaffold: %v", err)
	}
	if questionsPath != filepath.Join(root, ConfigDirName, QuestionsFileName) {
		t.Fatalf("unexpected questions path %q", questionsPath)
	}
	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("load scaffolded config: %v", err)
	}
	if cfg.QuestionsFile != questionsPath {
		t.Fatalf("expected scaffolded questions file %q, got %q", questionsPath, cfg.QuestionsFile)
	}
	if _, err := Scaffold(configPath, nil); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected overwrite refusal, got %v", err)
	}
}
