// Package config loads and validates drift settings.
//
// Settings come from an optional TOML file and are then overlaid by command
// line flags. Zero values are filled by [Config.SetDefaults]; [Config.Validate]
// reports the first invalid field as an INVALID_CONFIGURATION error.
//
//	cfg, err := config.Load(config.DefaultPath())
//	cfg.Seed = flagSeed
//	if err := cfg.ValidateAndSetDefaults(); err != nil { ... }
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/drift/pkg/anim"
	"github.com/matzehuels/drift/pkg/errors"
)

// Cache backends.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheNone  = "none"
)

// Debug views, cycled by the D key.
const (
	DebugNone     = "none"
	DebugElements = "elements"
	DebugFlow     = "flow"
	DebugPalette  = "palette"
)

// DebugViews lists the debug views in cycle order.
var DebugViews = []string{DebugNone, DebugElements, DebugFlow, DebugPalette}

// DefaultKioskFade is the cross-fade length in ticks when none is configured.
const DefaultKioskFade = 120

// PixelRatios lists the pixel ratios in cycle order.
var PixelRatios = []float64{1, 2, 0.5}

// ValidCacheBackends is the set of supported cache backends.
var ValidCacheBackends = map[string]bool{
	CacheFile:  true,
	CacheRedis: true,
	CacheNone:  true,
}

// DefaultSeed is used when neither the file nor the flags provide one.
const DefaultSeed = "drift"

// =============================================================================
// Config
// =============================================================================

// Config contains all drift settings.
type Config struct {
	Seed          string  `toml:"seed"`
	Combination   *int    `toml:"combination"` // nil draws a random combination
	Width         int     `toml:"width"`
	Height        int     `toml:"height"`
	PixelRatio    float64 `toml:"pixel_ratio"`
	FPS           int     `toml:"fps"`
	PauseAfter    int     `toml:"pause_after"` // ticks; 0 never pauses
	PreviewFactor int     `toml:"preview_factor"`
	Debug         bool    `toml:"debug"` // capture every combination after preview

	Kiosk   Kiosk   `toml:"kiosk"`
	Capture Capture `toml:"capture"`
	Cache   Cache   `toml:"cache"`
	Server  Server  `toml:"server"`

	validated bool
}

// Kiosk configures auto-cycling while paused. Interval and Fade are in ticks.
// An explicit fade of 0 commits each change immediately.
type Kiosk struct {
	Enabled  bool   `toml:"enabled"`
	Interval int    `toml:"interval"`
	Fade     *int   `toml:"fade"`
	Mode     string `toml:"mode"` // features, resources or both
	Batch    int    `toml:"batch"`
}

// Capture configures snapshot output.
type Capture struct {
	Dir    string `toml:"dir"`
	Frames int    `toml:"frames"` // ticks to run before a capture; 0 waits for preview
}

// Cache configures the capture cache.
type Cache struct {
	Backend  string        `toml:"backend"`
	Dir      string        `toml:"dir"`
	RedisURL string        `toml:"redis_url"`
	TTL      time.Duration `toml:"ttl"`
}

// Server configures the preview HTTP server.
type Server struct {
	Addr string `toml:"addr"`
}

// Load reads a TOML file. A missing file yields an empty config.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "parse %s", path)
	}
	return cfg, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/drift/drift.toml, falling back to
// ~/.config/drift/drift.toml.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "drift", "drift.toml")
}

// DefaultCacheDir returns the directory of the file cache.
func DefaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "drift")
	}
	return filepath.Join(dir, "drift")
}

// =============================================================================
// Config Methods
// =============================================================================

// ValidateAndSetDefaults applies defaults and validates the result.
// Calling it more than once has no further effect.
func (c *Config) ValidateAndSetDefaults() error {
	if c.validated {
		return nil
	}
	c.SetDefaults()
	if err := c.Validate(); err != nil {
		return err
	}
	c.validated = true
	return nil
}

// SetDefaults fills zero values.
func (c *Config) SetDefaults() {
	if c.Seed == "" {
		c.Seed = DefaultSeed
	}
	if c.Width == 0 {
		c.Width = 640
	}
	if c.Height == 0 {
		c.Height = 400
	}
	if c.PixelRatio == 0 {
		c.PixelRatio = 1
	}
	if c.FPS == 0 {
		c.FPS = 60
	}
	if c.PreviewFactor == 0 {
		c.PreviewFactor = anim.DefaultPreviewFactor
	}
	c.setKioskDefaults()
	c.setCacheDefaults()
	if c.Capture.Dir == "" {
		c.Capture.Dir = "."
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
}

func (c *Config) setKioskDefaults() {
	if c.Kiosk.Interval == 0 {
		c.Kiosk.Interval = 600
	}
	if c.Kiosk.Fade == nil {
		fade := DefaultKioskFade
		c.Kiosk.Fade = &fade
	}
	if c.Kiosk.Mode == "" {
		c.Kiosk.Mode = anim.KioskFeatures.String()
	}
	if c.Kiosk.Batch == 0 {
		c.Kiosk.Batch = 4
	}
}

func (c *Config) setCacheDefaults() {
	if c.Cache.Backend == "" {
		c.Cache.Backend = CacheFile
	}
	if c.Cache.Dir == "" {
		c.Cache.Dir = DefaultCacheDir()
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 7 * 24 * time.Hour
	}
}

// Validate checks every field.
func (c *Config) Validate() error {
	if err := errors.ValidateSeed(c.Seed); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return invalid("size must be positive, got %dx%d", c.Width, c.Height)
	}
	if !validPixelRatio(c.PixelRatio) {
		return invalid("pixel_ratio must be one of 1, 2, 0.5, got %v", c.PixelRatio)
	}
	if c.FPS <= 0 || c.FPS > 240 {
		return invalid("fps must be in 1..240, got %d", c.FPS)
	}
	if c.PauseAfter < 0 {
		return invalid("pause_after cannot be negative, got %d", c.PauseAfter)
	}
	if c.PreviewFactor <= 0 {
		return invalid("preview_factor must be positive, got %d", c.PreviewFactor)
	}
	if c.Kiosk.Interval <= 0 || c.kioskFade() < 0 || c.Kiosk.Batch < 0 {
		return invalid("kiosk interval must be positive and fade/batch non-negative")
	}
	if _, err := anim.ParseKioskMode(c.Kiosk.Mode); err != nil {
		return err
	}
	if c.Capture.Frames < 0 {
		return invalid("capture frames cannot be negative, got %d", c.Capture.Frames)
	}
	if !ValidCacheBackends[c.Cache.Backend] {
		return invalid("cache backend %q (must be one of: file, redis, none)", c.Cache.Backend)
	}
	if c.Cache.Backend == CacheRedis {
		if err := errors.ValidateRedisURL(c.Cache.RedisURL); err != nil {
			return err
		}
	}
	return nil
}

// KioskConfig converts the kiosk section for the animation machine.
func (c *Config) KioskConfig() anim.KioskConfig {
	mode, _ := anim.ParseKioskMode(c.Kiosk.Mode)
	return anim.KioskConfig{
		Enabled:  c.Kiosk.Enabled,
		Interval: c.Kiosk.Interval,
		Fade:     c.kioskFade(),
		Mode:     mode,
		Batch:    c.Kiosk.Batch,
	}
}

func (c *Config) kioskFade() int {
	if c.Kiosk.Fade == nil {
		return DefaultKioskFade
	}
	return *c.Kiosk.Fade
}

func validPixelRatio(r float64) bool {
	for _, v := range PixelRatios {
		if r == v {
			return true
		}
	}
	return false
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfiguration, format, args...)
}
