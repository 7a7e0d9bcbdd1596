// Package config resolves the au3deps run configuration from defaults, a
// project config file, the environment and command-line flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mouse-blink/au3deps/internal/logging"
	m "github.com/mouse-blink/au3deps/internal/model"
)

// Defaults.
const (
	DefaultOutput  = "dependencies.html"
	DefaultEnvFile = ".env"
)

// FileNames are the project config files looked up in the scan root, in order.
var FileNames = []string{".au3deps.yaml", ".au3deps.yml", ".au3deps.hcl"}

// Environment variables.
const (
	EnvOutput    = "AU3DEPS_OUTPUT"
	EnvFormat    = "AU3DEPS_FORMAT"
	EnvExclude   = "AU3DEPS_EXCLUDE"
	EnvLogLevel  = "AU3DEPS_LOG_LEVEL"
	EnvLogFormat = "AU3DEPS_LOG_FORMAT"
)

// Config is the fully resolved configuration of one invocation.
type Config struct {
	Root        m.Path
	Output      m.Path
	Format      m.Format
	Exclude     []string
	LogLevel    string
	LogFormat   string
	FailOnCycle bool
	AllCycles   bool
	Watch       bool
	// File is the config file that was applied, if any.
	File m.Path
}

// Overrides carries the flags the user set explicitly. Nil means unset.
type Overrides struct {
	Output      *string
	Format      *string
	Exclude     []string
	LogLevel    *string
	LogFormat   *string
	FailOnCycle *bool
	AllCycles   *bool
	Watch       bool
}

// LoadArgs holds the inputs of Load.
type LoadArgs struct {
	Root string
	// ConfigFile is an explicit config file; when empty FileNames are
	// looked up in Root.
	ConfigFile string
	// EnvFile is a dotenv file; a missing file is ignored.
	EnvFile string
	Flags   Overrides
}

// fileConfig mirrors the project config file. Both YAML and HCL use the same keys.
type fileConfig struct {
	Output      *string  `yaml:"output" hcl:"output,optional"`
	Format      *string  `yaml:"format" hcl:"format,optional"`
	Exclude     []string `yaml:"exclude" hcl:"exclude,optional"`
	LogLevel    *string  `yaml:"log_level" hcl:"log_level,optional"`
	LogFormat   *string  `yaml:"log_format" hcl:"log_format,optional"`
	FailOnCycle *bool    `yaml:"fail_on_cycle" hcl:"fail_on_cycle,optional"`
	AllCycles   *bool    `yaml:"all_cycles" hcl:"all_cycles,optional"`
}

// Load resolves the configuration. Later layers win: defaults, config file,
// environment, flags. Exclusions accumulate across layers.
func Load(args LoadArgs) (*Config, error) {
	if strings.TrimSpace(args.Root) == "" {
		return nil, errors.New("project directory is required")
	}

	cfg := &Config{
		Root:      m.Path(args.Root),
		Output:    DefaultOutput,
		Format:    m.FormatHTML,
		LogLevel:  "warn",
		LogFormat: logging.FormatText,
	}

	file, path, err := readConfigFile(args.Root, args.ConfigFile)
	if err != nil {
		return nil, err
	}

	if file != nil {
		cfg.File = m.Path(path)
		cfg.applyFile(file)
	}

	env, err := readEnv(args.EnvFile)
	if err != nil {
		return nil, err
	}

	cfg.applyEnv(env)
	cfg.applyFlags(args.Flags)
	cfg.Exclude = dedupe(cfg.Exclude)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values that cannot be verified by flag parsing.
func (c *Config) Validate() error {
	if c.Output == "" {
		return errors.New("output path must not be empty")
	}

	supported := false

	for _, f := range m.Formats() {
		if c.Format == f {
			supported = true
			break
		}
	}

	if !supported {
		return fmt.Errorf("unsupported format %q (want one of %v)", c.Format, m.Formats())
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

func (c *Config) applyFile(f *fileConfig) {
	if f.Output != nil {
		c.Output = m.Path(*f.Output)
	}

	if f.Format != nil {
		c.Format = m.Format(strings.ToLower(*f.Format))
	}

	c.Exclude = append(c.Exclude, f.Exclude...)

	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}

	if f.LogFormat != nil {
		c.LogFormat = *f.LogFormat
	}

	if f.FailOnCycle != nil {
		c.FailOnCycle = *f.FailOnCycle
	}

	if f.AllCycles != nil {
		c.AllCycles = *f.AllCycles
	}
}

func (c *Config) applyEnv(getenv func(string) string) {
	if v := getenv(EnvOutput); v != "" {
		c.Output = m.Path(v)
	}

	if v := getenv(EnvFormat); v != "" {
		c.Format = m.Format(strings.ToLower(v))
	}

	for _, name := range strings.Split(getenv(EnvExclude), ",") {
		if name = strings.TrimSpace(name); name != "" {
			c.Exclude = append(c.Exclude, name)
		}
	}

	if v := getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	if v := getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
}

func (c *Config) applyFlags(o Overrides) {
	if o.Output != nil {
		c.Output = m.Path(*o.Output)
	}

	if o.Format != nil {
		c.Format = m.Format(strings.ToLower(*o.Format))
	}

	c.Exclude = append(c.Exclude, o.Exclude...)

	if o.LogLevel != nil {
		c.LogLevel = *o.LogLevel
	}

	if o.LogFormat != nil {
		c.LogFormat = *o.LogFormat
	}

	if o.FailOnCycle != nil {
		c.FailOnCycle = *o.FailOnCycle
	}

	if o.AllCycles != nil {
		c.AllCycles = *o.AllCycles
	}

	c.Watch = o.Watch
}

// readConfigFile returns the parsed config file and its path, or nil when
// no explicit file was given and none exists in root.
func readConfigFile(root, explicit string) (*fileConfig, string, error) {
	path := explicit

	if path == "" {
		for _, name := range FileNames {
			candidate := filepath.Join(root, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				path = candidate
				break
			}
		}

		if path == "" {
			return nil, "", nil
		}
	}

	var cfg fileConfig

	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
			return nil, "", fmt.Errorf("config %s: %w", path, err)
		}

		return &cfg, path, nil
	}

	// #nosec G304 - the config path is chosen by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, "", fmt.Errorf("config %s: %w", path, err)
	}

	return &cfg, path, nil
}

// readEnv returns a lookup that prefers the process environment over the
// dotenv file. The process environment itself is never modified.
func readEnv(envFile string) (func(string) string, error) {
	values := map[string]string{}

	if envFile != "" {
		read, err := godotenv.Read(envFile)

		switch {
		case err == nil:
			values = read
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("env file %s: %w", envFile, err)
		}
	}

	return func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}

		return values[key]
	}, nil
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	result := make([]string, 0, len(names))

	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}
		result = append(result, name)
	}

	return result
}
