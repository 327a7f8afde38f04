package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// EnvVar names the variable that points at a config file.
const EnvVar = "LFRONT_CONFIG"

type Config struct {
	Log    LogConfig    `toml:"log" yaml:"log"`
	Lexer  LexerConfig  `toml:"lexer" yaml:"lexer"`
	Server ServerConfig `toml:"server" yaml:"server"`
	Repl   ReplConfig   `toml:"repl" yaml:"repl"`
}

type LogConfig struct {
	Dir   string `toml:"dir" yaml:"dir"`
	Level string `toml:"level" yaml:"level"`
}

// LexerConfig bounds how much input one parse may read. Zero is unbounded.
type LexerConfig struct {
	MaxRunes int `toml:"max_runes" yaml:"max_runes"`
}

type ServerConfig struct {
	Addr           string   `toml:"addr" yaml:"addr"`
	MaxSourceBytes int64    `toml:"max_source_bytes" yaml:"max_source_bytes"`
	ReadTimeout    Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout   Duration `toml:"write_timeout" yaml:"write_timeout"`
}

type ReplConfig struct {
	Prompt     string `toml:"prompt" yaml:"prompt"`
	ShowTokens bool   `toml:"show_tokens" yaml:"show_tokens"`
	Color      bool   `toml:"color" yaml:"color"`
}

// Duration wraps time.Duration so config files can say "5s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default is the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads a TOML or YAML file, picked by extension.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Discover loads the file named by explicit, then $LFRONT_CONFIG, then the
// first default location that exists. With none of them present it
// returns Default.
func Discover(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}

	for _, p := range defaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

func defaultPaths() []string {
	paths := []string{
		"./lfront.toml",
		"./lfront.yaml",
		"./configs/lfront.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "lfront", "config.toml"))
	}
	return paths
}

func (c *Config) applyDefaults() {
	if c.Log.Dir == "" {
		c.Log.Dir = "logs"
	}
	if c.Log.Level == "" {
		c.Log.Level = "error"
	}

	if c.Server.Addr == "" {
		c.Server.Addr = "localhost:8080"
	}
	if c.Server.MaxSourceBytes == 0 {
		c.Server.MaxSourceBytes = 1 << 20
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 10 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 10 * time.Second
	}

	if c.Repl.Prompt == "" {
		c.Repl.Prompt = "> "
	}
}
