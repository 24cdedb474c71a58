// Package config provides configuration types, defaults and loading for winman.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/andareed/winman/logging"
	"github.com/andareed/winman/registry"
)

// Config holds all configuration options for winman.
type Config struct {
	Layout LayoutConfig `mapstructure:"layout" yaml:"layout"`
	UI     UIConfig     `mapstructure:"ui" yaml:"ui"`
	Server ServerConfig `mapstructure:"server" yaml:"server"`
}

// LayoutConfig mirrors registry.Layout. Sizes and positions are in pixels.
type LayoutConfig struct {
	Gap          int               `mapstructure:"gap" yaml:"gap"`
	Origin       registry.Position `mapstructure:"origin" yaml:"origin"`
	DefaultSize  registry.Size     `mapstructure:"default_size" yaml:"default_size"`
	MinSize      registry.Size     `mapstructure:"min_size" yaml:"min_size"`
	MaxSize      registry.Size     `mapstructure:"max_size" yaml:"max_size"`
	GridSize     int               `mapstructure:"grid_size" yaml:"grid_size"`
	HandleSize   int               `mapstructure:"handle_size" yaml:"handle_size"`
	HeaderHeight int               `mapstructure:"header_height" yaml:"header_height"`
	Anchor       string            `mapstructure:"anchor" yaml:"anchor"` // "last-created" (default) or "last-visible"
}

// UIConfig holds terminal desktop options.
type UIConfig struct {
	CellWidth  int    `mapstructure:"cell_width" yaml:"cell_width"`   // pixels per terminal column
	CellHeight int    `mapstructure:"cell_height" yaml:"cell_height"` // pixels per terminal row
	ShowDebug  bool   `mapstructure:"show_debug" yaml:"show_debug"`   // show position/size inside panels
	Content    string `mapstructure:"content" yaml:"content"`         // body text of new panels
}

// ServerConfig holds browser surface options.
type ServerConfig struct {
	Addr             string `mapstructure:"addr" yaml:"addr"`
	MetricsNamespace string `mapstructure:"metrics_namespace" yaml:"metrics_namespace"`
}

// Defaults returns the reference configuration.
func Defaults() Config {
	l := registry.DefaultLayout()
	return Config{
		Layout: LayoutConfig{
			Gap:          l.Gap,
			Origin:       l.Origin,
			DefaultSize:  l.DefaultSize,
			MinSize:      l.MinSize,
			MaxSize:      l.MaxSize,
			GridSize:     l.GridSize,
			HandleSize:   l.HandleSize,
			HeaderHeight: l.HeaderHeight,
			Anchor:       string(l.Anchor),
		},
		UI: UIConfig{
			CellWidth:  10,
			CellHeight: 20,
			ShowDebug:  false,
			Content:    "New Dialog Content",
		},
		Server: ServerConfig{
			Addr:             "127.0.0.1:8080",
			MetricsNamespace: "winman",
		},
	}
}

// RegistryLayout converts the layout section into a registry.Layout.
func (c LayoutConfig) RegistryLayout() (registry.Layout, error) {
	anchor, err := registry.ParseAnchor(c.Anchor)
	if err != nil {
		return registry.Layout{}, err
	}
	l := registry.Layout{
		Gap:          c.Gap,
		Origin:       c.Origin,
		DefaultSize:  c.DefaultSize,
		MinSize:      c.MinSize,
		MaxSize:      c.MaxSize,
		GridSize:     c.GridSize,
		HandleSize:   c.HandleSize,
		HeaderHeight: c.HeaderHeight,
		Anchor:       anchor,
	}
	if err := l.Validate(); err != nil {
		return registry.Layout{}, fmt.Errorf("layout: %w", err)
	}
	return l, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	var errs []error
	if _, err := c.Layout.RegistryLayout(); err != nil {
		errs = append(errs, err)
	}
	if c.UI.CellWidth <= 0 || c.UI.CellHeight <= 0 {
		errs = append(errs, fmt.Errorf("ui: cell size must be positive, got %dx%d", c.UI.CellWidth, c.UI.CellHeight))
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server: addr is required"))
	}
	return errors.Join(errs...)
}

// DefaultPath returns ~/.config/winman/config.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".winman", "config.yaml")
	}
	return filepath.Join(home, ".config", "winman", "config.yaml")
}

// Load reads configuration from path, or from the default location when
// path is empty. A missing default file is not an error. WINMAN_* env vars
// override file values (WINMAN_LAYOUT_GAP, WINMAN_SERVER_ADDR, ...).
func Load(path string) (Config, string, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("winman")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("reading config: %w", err)
		}
		logging.Debugf("config: no config file found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, "", fmt.Errorf("invalid config: %w", err)
	}
	logging.Infof("config: loaded from %q", v.ConfigFileUsed())
	return cfg, v.ConfigFileUsed(), nil
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("layout.gap", d.Layout.Gap)
	v.SetDefault("layout.origin.x", d.Layout.Origin.X)
	v.SetDefault("layout.origin.y", d.Layout.Origin.Y)
	v.SetDefault("layout.default_size.width", d.Layout.DefaultSize.Width)
	v.SetDefault("layout.default_size.height", d.Layout.DefaultSize.Height)
	v.SetDefault("layout.min_size.width", d.Layout.MinSize.Width)
	v.SetDefault("layout.min_size.height", d.Layout.MinSize.Height)
	v.SetDefault("layout.max_size.width", d.Layout.MaxSize.Width)
	v.SetDefault("layout.max_size.height", d.Layout.MaxSize.Height)
	v.SetDefault("layout.grid_size", d.Layout.GridSize)
	v.SetDefault("layout.handle_size", d.Layout.HandleSize)
	v.SetDefault("layout.header_height", d.Layout.HeaderHeight)
	v.SetDefault("layout.anchor", d.Layout.Anchor)
	v.SetDefault("ui.cell_width", d.UI.CellWidth)
	v.SetDefault("ui.cell_height", d.UI.CellHeight)
	v.SetDefault("ui.show_debug", d.UI.ShowDebug)
	v.SetDefault("ui.content", d.UI.Content)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.metrics_namespace", d.Server.MetricsNamespace)
}

// WriteDefault writes the default configuration as YAML to path, creating
// parent directories. An existing file is left alone.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %q already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(Defaults())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	header := "# winman configuration. Sizes and positions are in pixels.\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	logging.Infof("config: wrote defaults to %q", path)
	return nil
}
