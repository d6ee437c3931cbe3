package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/bookmgr/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	d := config.Defaults()
	if cfg.API.BaseURL != d.API.BaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.API.BaseURL, d.API.BaseURL)
	}
	if cfg.API.Timeout != 0 {
		t.Errorf("Timeout = %v, want 0", cfg.API.Timeout)
	}
	if cfg.UI.NotifyDuration != 4*time.Second {
		t.Errorf("NotifyDuration = %v, want 4s", cfg.UI.NotifyDuration)
	}
	if cfg.UI.Language != "en" {
		t.Errorf("Language = %q, want en", cfg.UI.Language)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
api:
  base_url: http://books.internal:9000/api/livros
  timeout: 15s
ui:
  language: pt-BR
  notify_duration: 2s
log:
  level: debug
  file: /tmp/bookmgr-test.log
`)
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://books.internal:9000/api/livros" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 15*time.Second {
		t.Errorf("Timeout = %v", cfg.API.Timeout)
	}
	if cfg.UI.Language != "pt-BR" {
		t.Errorf("Language = %q", cfg.UI.Language)
	}
	if cfg.UI.NotifyDuration != 2*time.Second {
		t.Errorf("NotifyDuration = %v", cfg.UI.NotifyDuration)
	}
	if cfg.Log.Level != "debug" || cfg.Log.File != "/tmp/bookmgr-test.log" {
		t.Errorf("Log = %+v", cfg.Log)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "api:\n  base_url: http://from-file/api/livros\n")
	t.Setenv("BOOKMGR_API_BASE_URL", "http://from-env/api/livros")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://from-env/api/livros" {
		t.Errorf("BaseURL = %q, want env value", cfg.API.BaseURL)
	}
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	path := writeConfig(t, "ui:\n  language: pt-BR\n")
	t.Setenv("BOOKMGR_CONFIG", path)

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UI.Language != "pt-BR" {
		t.Errorf("Language = %q, want pt-BR", cfg.UI.Language)
	}
}

func TestLoad_BrokenYAML(t *testing.T) {
	path := writeConfig(t, "api: [unclosed\n")
	if _, err := config.Load(path); err == nil {
		t.Error("Load should fail on malformed YAML")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yml")
	cfg := config.Defaults()
	cfg.API.BaseURL = "https://books.example.com/api/livros"
	cfg.API.Timeout = 30 * time.Second
	cfg.UI.NotifyDuration = 1500 * time.Millisecond

	if err := config.Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.API != cfg.API {
		t.Errorf("API = %+v, want %+v", got.API, cfg.API)
	}
	if got.UI != cfg.UI {
		t.Errorf("UI = %+v, want %+v", got.UI, cfg.UI)
	}
}

func TestMarshal_HumanDurations(t *testing.T) {
	data, err := config.Marshal(config.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "notify_duration: 4s") {
		t.Errorf("expected human duration in:\n%s", data)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{"defaults", func(*config.Config) {}, false},
		{"https", func(c *config.Config) { c.API.BaseURL = "https://x.test/api" }, false},
		{"relative url", func(c *config.Config) { c.API.BaseURL = "/api/livros" }, true},
		{"ftp", func(c *config.Config) { c.API.BaseURL = "ftp://x.test/api" }, true},
		{"negative timeout", func(c *config.Config) { c.API.Timeout = -time.Second }, true},
		{"zero notify", func(c *config.Config) { c.UI.NotifyDuration = 0 }, true},
	}
	for _, c := range cases {
		cfg := config.Defaults()
		c.mutate(cfg)
		err := cfg.Validate()
		if (err != nil) != c.wantErr {
			t.Errorf("%s: Validate() = %v, wantErr %v", c.name, err, c.wantErr)
		}
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	if got := config.ExpandHome("~/x/y.log"); got != filepath.Join(home, "x", "y.log") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := config.ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome changed absolute path: %q", got)
	}
}
