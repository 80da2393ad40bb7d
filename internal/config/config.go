package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"treeview/internal/logging"
	"treeview/internal/resource"
	"treeview/internal/store"
)

const (
	DefaultAppID = "com.github.gtk-rs.examples.treeview"
	DefaultTitle = "TreeView Sample"

	envPrefix = "TREEVIEW_"
)

// Priority: treeview.yaml -> treeview.yml
var fileNames = []string{"treeview.yaml", "treeview.yml"}

type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

type Config struct {
	AppID string `koanf:"app_id"`
	Title string `koanf:"title"`
	// Image overrides the bundled icon with a file on disk.
	Image string `koanf:"image"`
	Roots int    `koanf:"roots"`
	Log   Log    `koanf:"log"`

	fileUsed string
}

// FileUsed is the config file that was read, if any.
func (c *Config) FileUsed() string { return c.fileUsed }

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"app_id":     DefaultAppID,
		"title":      DefaultTitle,
		"image":      "",
		"roots":      store.DefaultRoots,
		"log.level":  "info",
		"log.format": logging.FormatText,
		"log.file":   "",
	}
}

// Load layers defaults, the config file, TREEVIEW_* variables and explicitly
// set flags, in increasing priority. cfgFile may be empty, in which case
// root is searched for a treeview.yaml.
func Load(root, cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile == "" {
		cfgFile = findConfigFile(root)
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return flagKey(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.fileUsed = cfgFile

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Roots < 0 {
		return fmt.Errorf("roots must be >= 0 (got %d)", c.Roots)
	}
	if strings.TrimSpace(c.AppID) == "" {
		return fmt.Errorf("app_id is required")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", logging.FormatText, logging.FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// ImageName is the logical resource the right pane asks the loader for.
func (c *Config) ImageName() string {
	if c.Image != "" {
		return c.Image
	}
	return resource.EyeIcon
}

func findConfigFile(root string) string {
	for _, name := range fileNames {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// TREEVIEW_LOG_LEVEL -> log.level, TREEVIEW_APP_ID -> app_id
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	if rest, ok := strings.CutPrefix(key, "log_"); ok {
		return "log." + rest
	}
	return key
}

// --log-level -> log.level, --app-id -> app_id
func flagKey(name string) string {
	if rest, ok := strings.CutPrefix(name, "log-"); ok {
		return "log." + strings.ReplaceAll(rest, "-", "_")
	}
	return strings.ReplaceAll(name, "-", "_")
}
