package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "lfront.toml", `
[log]
level = "debug"

[lexer]
max_runes = 4096

[server]
addr = ":9000"
read_timeout = "3s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load toml: %v", err)
	}

	if cfg.Log.Level != "debug" || cfg.Lexer.MaxRunes != 4096 || cfg.Server.Addr != ":9000" {
		t.Errorf("Unexpected config: %+v", cfg)
	}
	if cfg.Server.ReadTimeout.Duration != 3*time.Second {
		t.Errorf("Expected 3s read timeout, got %v", cfg.Server.ReadTimeout)
	}
	if cfg.Log.Dir != "logs" || cfg.Repl.Prompt != "> " {
		t.Errorf("Expected defaults for unset fields, got %+v", cfg)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "lfront.yaml", `
repl:
  prompt: "L> "
  show_tokens: true
server:
  max_source_bytes: 512
  write_timeout: 250ms
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load yaml: %v", err)
	}

	if cfg.Repl.Prompt != "L> " || !cfg.Repl.ShowTokens {
		t.Errorf("Unexpected repl config: %+v", cfg.Repl)
	}
	if cfg.Server.MaxSourceBytes != 512 {
		t.Errorf("Expected 512 source bytes, got %d", cfg.Server.MaxSourceBytes)
	}
	if cfg.Server.WriteTimeout.Duration != 250*time.Millisecond {
		t.Errorf("Expected 250ms write timeout, got %v", cfg.Server.WriteTimeout)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Expected error for missing file")
	}

	if _, err := Load(writeFile(t, "lfront.ini", "x=1")); err == nil {
		t.Error("Expected error for unknown extension")
	}

	if _, err := Load(writeFile(t, "broken.toml", "[log\nlevel=")); err == nil {
		t.Error("Expected error for malformed toml")
	}
}

func TestDiscover(t *testing.T) {
	path := writeFile(t, "env.toml", "[repl]\nprompt = \"env> \"\n")
	t.Setenv(EnvVar, path)

	cfg, err := Discover("")
	if err != nil {
		t.Fatalf("Failed to discover config: %v", err)
	}
	if cfg.Repl.Prompt != "env> " {
		t.Errorf("Expected config from %s, got prompt %q", EnvVar, cfg.Repl.Prompt)
	}

	explicit := writeFile(t, "explicit.yaml", "repl:\n  prompt: \"x> \"\n")
	cfg, err = Discover(explicit)
	if err != nil || cfg.Repl.Prompt != "x> " {
		t.Errorf("Expected explicit file to win, got %+v, %v", cfg, err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.Addr == "" || cfg.Server.MaxSourceBytes <= 0 || cfg.Log.Level == "" {
		t.Errorf("Expected populated defaults, got %+v", cfg)
	}
}
