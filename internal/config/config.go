package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/atomicstack/git-branch-control/internal/app"
	"github.com/atomicstack/git-branch-control/internal/git"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath  string
	MaxSizeMB int
	Trace     bool
}

const (
	DefaultLogFile   = "git-branch-control.log"
	DefaultLogSizeMB = 1

	envRepo       = "GIT_BRANCH_CONTROL_REPO"
	envStart      = "GIT_BRANCH_CONTROL_START"
	envTimeout    = "GIT_BRANCH_CONTROL_TIMEOUT"
	envWidth      = "GIT_BRANCH_CONTROL_WIDTH"
	envHeight     = "GIT_BRANCH_CONTROL_HEIGHT"
	envShowFooter = "GIT_BRANCH_CONTROL_FOOTER"
	envVerbose    = "GIT_BRANCH_CONTROL_VERBOSE"
	envNoColor    = "GIT_BRANCH_CONTROL_NO_COLOR"
	envTrace      = "GIT_BRANCH_CONTROL_TRACE"
	envLogFile    = "GIT_BRANCH_CONTROL_LOG_FILE"
	envLogMaxSize = "GIT_BRANCH_CONTROL_LOG_MAX_SIZE"
	envConfig     = "GIT_BRANCH_CONTROL_CONFIG"

	// envNoColorStandard follows https://no-color.org: any non-empty value disables colour.
	envNoColorStandard = "NO_COLOR"
)

// envBindings maps flag names to the variables that may supply them, in
// priority order.
var envBindings = map[string][]string{
	"repo":         {envRepo},
	"start":        {envStart},
	"timeout":      {envTimeout},
	"width":        {envWidth},
	"height":       {envHeight},
	"footer":       {envShowFooter},
	"verbose":      {envVerbose},
	"no-color":     {envNoColor, envNoColorStandard},
	"trace":        {envTrace},
	"log-file":     {envLogFile},
	"log-max-size": {envLogMaxSize},
}

// Error marks a configuration problem. The process exits with status 2.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func configError(format string, args ...interface{}) error {
	return &Error{Err: fmt.Errorf(format, args...)}
}

// NewFlagSet declares every command line flag.
func NewFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("git-branch-control", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.String("repo", "", "directory inside the git repository (defaults to the working directory)")
	fs.String("start", "", "initial screen: branches or commands")
	fs.Duration("timeout", git.DefaultCommandTimeout, "timeout for each git command")
	fs.Int("width", 0, "desired viewport width in cells (0 uses terminal width)")
	fs.Int("height", 0, "desired viewport height in rows (0 uses terminal height)")
	fs.Bool("footer", false, "enable footer hint row (disabled by default)")
	fs.Bool("verbose", false, "show success messages for actions")
	fs.Bool("no-color", false, "disable colours")
	fs.Bool("trace", false, "enable verbose JSON trace logging")
	fs.String("log-file", DefaultLogFile, "path to the log file")
	fs.Int("log-max-size", DefaultLogSizeMB, "log size in megabytes before rotation")
	fs.String("config", "", "path to a YAML file using the flag names as keys")
	return fs
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := NewFlagSet()
	if err := fs.Parse(args); err != nil {
		return Config{}, &Error{Err: err}
	}
	return Resolve(fs, environ, fs.Args())
}

// Resolve fills every flag that was not given on the command line from the
// environment, then from the YAML file, and builds the configuration.
// Precedence is flag, environment, file, default.
func Resolve(fs *pflag.FlagSet, environ []string, args []string) (Config, error) {
	if len(args) > 0 {
		return Config{}, configError("unexpected arguments: %s", strings.Join(args, " "))
	}
	env := parseEnv(environ)

	path, _ := fs.GetString("config")
	if !fs.Changed("config") {
		path = env[envConfig]
	}
	file, err := readFile(path)
	if err != nil {
		return Config{}, err
	}

	var unknown []string
	for key := range file {
		if _, ok := envBindings[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return Config{}, configError("%s: unknown keys: %s", path, strings.Join(unknown, ", "))
	}

	names := make([]string, 0, len(envBindings))
	for name := range envBindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if fs.Changed(name) {
			continue
		}
		if value, key, ok := envValue(env, name); ok {
			if err := fs.Set(name, value); err != nil {
				return Config{}, configError("%s: invalid value %q: %v", key, value, err)
			}
			continue
		}
		if value, ok := file[name]; ok {
			if err := fs.Set(name, value); err != nil {
				return Config{}, configError("%s: %s: invalid value %q: %v", path, name, value, err)
			}
		}
	}

	cfg, err := build(fs)
	if err != nil {
		return Config{}, err
	}
	cfg.File = path
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

func build(fs *pflag.FlagSet) (Config, error) {
	var errs []error
	str := func(name string) string {
		v, err := fs.GetString(name)
		errs = append(errs, err)
		return v
	}
	integer := func(name string) int {
		v, err := fs.GetInt(name)
		errs = append(errs, err)
		return v
	}
	boolean := func(name string) bool {
		v, err := fs.GetBool(name)
		errs = append(errs, err)
		return v
	}
	timeout, err := fs.GetDuration("timeout")
	errs = append(errs, err)

	cfg := Config{
		App: app.Config{
			RepoDir:    str("repo"),
			Start:      strings.TrimSpace(str("start")),
			Timeout:    timeout,
			Width:      integer("width"),
			Height:     integer("height"),
			ShowFooter: boolean("footer"),
			Verbose:    boolean("verbose"),
			NoColor:    boolean("no-color"),
		},
		Logging: Logging{
			FilePath:  str("log-file"),
			MaxSizeMB: integer("log-max-size"),
			Trace:     boolean("trace"),
		},
		Flags: map[string]string{},
	}
	if err := errors.Join(errs...); err != nil {
		return Config{}, &Error{Err: err}
	}
	fs.VisitAll(func(f *pflag.Flag) {
		cfg.Flags[f.Name] = f.Value.String()
	})
	return cfg, nil
}

func envValue(env map[string]string, name string) (string, string, bool) {
	for _, key := range envBindings[name] {
		v, ok := env[key]
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		if key == envNoColorStandard {
			return "true", key, true
		}
		return strings.TrimSpace(v), key, true
	}
	return "", "", false
}

// readFile loads the optional YAML file into flag-name keyed strings.
func readFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configError("read config: %w", err)
	}
	raw := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, configError("parse %s: %w", path, err)
	}
	values := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			values[key] = v
		case bool:
			values[key] = strconv.FormatBool(v)
		case int:
			values[key] = strconv.Itoa(v)
		case float64:
			values[key] = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			return nil, configError("%s: %s must be a scalar value", path, key)
		}
	}
	return values, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

// Validate ensures the resolved values are usable.
func Validate(cfg Config) error {
	switch strings.ToLower(cfg.App.Start) {
	case "", "branches", "commands":
	default:
		return configError("start must be branches or commands (got %q)", cfg.App.Start)
	}
	if cfg.App.Timeout <= 0 {
		return configError("timeout must be > 0 (got %s)", cfg.App.Timeout)
	}
	if cfg.App.Width < 0 {
		return configError("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return configError("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.Logging.MaxSizeMB < 1 {
		return configError("log-max-size must be >= 1 (got %d)", cfg.Logging.MaxSizeMB)
	}
	if strings.TrimSpace(cfg.Logging.FilePath) == "" {
		return configError("log-file must not be empty")
	}
	return nil
}
