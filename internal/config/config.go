package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/brickrouge-dev/brickrouge/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "brickrouge.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 3100

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultLocale is the default translation locale.
	DefaultLocale = "en"

	// DefaultManifest is the default asset manifest file.
	DefaultManifest = "assets-manifest.json"
)

// Config represents the complete brickrouge.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Preview contains preview server configuration.
	Preview PreviewConfig `json:"preview,omitempty"`

	// Assets contains asset configuration.
	Assets AssetsConfig `json:"assets,omitempty"`

	// I18n contains translation configuration.
	I18n I18nConfig `json:"i18n,omitempty"`

	// Publish contains S3 publishing configuration.
	Publish PublishConfig `json:"publish,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Port is the port to run the preview server on.
	Port int `json:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// HotReload reloads open pages when watched files change.
	HotReload bool `json:"hotReload,omitempty"`

	// Watch contains paths to watch for changes.
	Watch []string `json:"watch,omitempty"`

	// Ignore contains patterns to ignore during watch.
	Ignore []string `json:"ignore,omitempty"`

	// Notes is a directory of Markdown files, one per widget sample,
	// shown in the gallery.
	Notes string `json:"notes,omitempty"`
}

// AssetsConfig contains asset settings.
type AssetsConfig struct {
	// Dirs are the directories assets are served and published from.
	Dirs []string `json:"dirs,omitempty"`

	// Prefix is the URL prefix for assets (default: "/assets/").
	Prefix string `json:"prefix,omitempty"`

	// Manifest is the path of the fingerprint manifest.
	Manifest string `json:"manifest,omitempty"`
}

// I18nConfig contains translation settings.
type I18nConfig struct {
	// Locale is the default locale.
	Locale string `json:"locale,omitempty"`

	// Catalogs is the directory of YAML catalogs.
	Catalogs string `json:"catalogs,omitempty"`
}

// PublishConfig contains S3 publishing settings.
type PublishConfig struct {
	// Bucket is the destination bucket.
	Bucket string `json:"bucket,omitempty"`

	// Region is the bucket region.
	Region string `json:"region,omitempty"`

	// Endpoint overrides the S3 endpoint, for S3 compatible stores.
	Endpoint string `json:"endpoint,omitempty"`

	// Prefix is prepended to every object key.
	Prefix string `json:"prefix,omitempty"`

	// BaseURL is the public URL of the bucket.
	BaseURL string `json:"baseURL,omitempty"`

	// Fingerprint adds a content hash to object keys.
	Fingerprint *bool `json:"fingerprint,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads configuration from the specified directory.
// It looks for brickrouge.json in the directory, then applies the
// environment overlay.
func Load(dir string) (*Config, error) {
	cfg, err := LoadFile(filepath.Join(dir, ConfigFileName))
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(dir); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.CodeConfigNotFound).
				WithDetail("No " + ConfigFileName + " found in " + filepath.Dir(path))
		}
		return nil, errors.New(errors.CodeConfigRead).Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(errors.CodeConfigRead).
			WithDetail("Failed to parse " + ConfigFileName + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New(errors.CodeConfigRead).Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New(errors.CodeConfigRead).Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Watch == nil {
		c.Preview.Watch = []string{"assets", "locales"}
	}

	if c.Assets.Dirs == nil {
		c.Assets.Dirs = []string{"assets"}
	}
	if c.Assets.Prefix == "" {
		c.Assets.Prefix = "/assets/"
	}
	if c.Assets.Manifest == "" {
		c.Assets.Manifest = DefaultManifest
	}

	if c.I18n.Locale == "" {
		c.I18n.Locale = DefaultLocale
	}
	if c.I18n.Catalogs == "" {
		c.I18n.Catalogs = "locales"
	}

	if c.Publish.Region == "" {
		c.Publish.Region = "us-east-1"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("preview.port must be between 0 and 65535")
	}
	if len(c.Assets.Dirs) == 0 {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("assets.dirs must list at least one directory")
	}
	if c.Publish.BaseURL != "" && c.Publish.Bucket == "" {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("publish.baseURL is set but publish.bucket is empty")
	}
	return nil
}

// ValidatePublish checks that publishing is configured.
func (c *Config) ValidatePublish() error {
	if c.Publish.Bucket == "" {
		return errors.New(errors.CodeConfigInvalid).
			WithDetail("publish.bucket is required").
			WithSuggestion("Set publish.bucket in " + ConfigFileName + " or BRICKROUGE_S3_BUCKET")
	}
	return nil
}

// PreviewAddress returns the address string for the preview server.
func (c *Config) PreviewAddress() string {
	return c.Preview.Host + ":" + strconv.Itoa(c.Preview.Port)
}

// PreviewURL returns the full URL for the preview server.
func (c *Config) PreviewURL() string {
	return "http://" + c.PreviewAddress()
}

// Fingerprint reports whether published keys carry a content hash.
func (c *Config) Fingerprint() bool {
	return c.Publish.Fingerprint == nil || *c.Publish.Fingerprint
}

// resolve returns path relative to the config directory.
func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Dir(), path)
}

// AssetDirs returns the absolute asset directories.
func (c *Config) AssetDirs() []string {
	dirs := make([]string, 0, len(c.Assets.Dirs))
	for _, dir := range c.Assets.Dirs {
		dirs = append(dirs, c.resolve(dir))
	}
	return dirs
}

// ManifestPath returns the absolute path of the asset manifest.
func (c *Config) ManifestPath() string {
	return c.resolve(c.Assets.Manifest)
}

// CatalogsPath returns the absolute path of the catalogs directory.
func (c *Config) CatalogsPath() string {
	return c.resolve(c.I18n.Catalogs)
}

// NotesPath returns the absolute path of the gallery notes directory, or
// "" when none is configured.
func (c *Config) NotesPath() string {
	return c.resolve(c.Preview.Notes)
}

// WatchPaths returns the absolute watched paths.
func (c *Config) WatchPaths() []string {
	paths := make([]string, 0, len(c.Preview.Watch))
	for _, p := range c.Preview.Watch {
		paths = append(paths, c.resolve(p))
	}
	return paths
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	path := filepath.Join(dir, ConfigFileName)
	_, err := os.Stat(path)
	return err == nil
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing brickrouge.json, or an error if not found.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New(errors.CodeConfigNotFound).
				WithDetail("No " + ConfigFileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the current working directory.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return LoadFrom(wd)
}

// LoadFrom loads the configuration of the project containing dir.
// Without a project file the defaults and the environment overlay of dir
// are used.
func LoadFrom(dir string) (*Config, error) {
	root, err := FindProjectRoot(dir)
	if err != nil {
		if !errors.Is(err, errors.CodeConfigNotFound) {
			return nil, err
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		cfg := New()
		cfg.configPath = filepath.Join(abs, ConfigFileName)
		if err := cfg.ApplyEnv(abs); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	return Load(root)
}
