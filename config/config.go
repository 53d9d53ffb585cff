package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"demget/fileutil"
)

// DefaultFile is the config file looked up in the working directory when no
// explicit path is given.
const DefaultFile = "demget.yml"

// Config defines configuration for the demget CLI.
type Config struct {
	SRTMDir      string        `yaml:"srtm_dir"`
	GMTEDDir     string        `yaml:"gmted_dir"`
	SRTMBaseURL  string        `yaml:"srtm_base_url"`
	GMTEDBaseURL string        `yaml:"gmted_base_url"`
	Timeout      time.Duration `yaml:"timeout"`
}

// Default returns a Config matching the canonical dataset locations: storage
// directories relative to the working directory and the public CGIAR / USGS
// mirrors.
func Default() Config {
	return Config{
		SRTMDir:      "srtmdata",
		GMTEDDir:     "gmteddata",
		SRTMBaseURL:  "https://srtm.csi.cgiar.org/wp-content/uploads/files/srtm_5x5/TIFF",
		GMTEDBaseURL: "https://edcintl.cr.usgs.gov/downloads/sciweb1/shared/topo/downloads/GMTED/Global_tiles_GMTED/075darcsec/mea",
		Timeout:      30 * time.Second,
	}
}

// yamlConfig is used for YAML unmarshaling with string durations.
type yamlConfig struct {
	SRTMDir      string `yaml:"srtm_dir"`
	GMTEDDir     string `yaml:"gmted_dir"`
	SRTMBaseURL  string `yaml:"srtm_base_url"`
	GMTEDBaseURL string `yaml:"gmted_base_url"`
	Timeout      string `yaml:"timeout"`
}

// Load returns the effective configuration: defaults, overlaid with the
// config file (if present), overlaid with environment variables. An empty
// path means the default file, which is allowed to be absent; an explicit
// path must exist.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		if fileutil.FileExists(DefaultFile) {
			path = DefaultFile
		}
	}

	if path != "" {
		loaded, err := LoadFromFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFromFile loads configuration from a YAML file, starting from defaults.
func LoadFromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return Config{}, fmt.Errorf("parse config file: %w", err)
	}

	cfg := Default()

	if yc.SRTMDir != "" {
		cfg.SRTMDir = yc.SRTMDir
	}
	if yc.GMTEDDir != "" {
		cfg.GMTEDDir = yc.GMTEDDir
	}
	if yc.SRTMBaseURL != "" {
		cfg.SRTMBaseURL = yc.SRTMBaseURL
	}
	if yc.GMTEDBaseURL != "" {
		cfg.GMTEDBaseURL = yc.GMTEDBaseURL
	}
	if yc.Timeout != "" {
		d, err := time.ParseDuration(yc.Timeout)
		if err != nil {
			return Config{}, fmt.Errorf("parse timeout: %w", err)
		}
		cfg.Timeout = d
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables.
// Environment variables use the DEMGET_ prefix.
func (c *Config) LoadFromEnv() error {
	if v := os.Getenv("DEMGET_SRTM_DIR"); v != "" {
		c.SRTMDir = v
	}
	if v := os.Getenv("DEMGET_GMTED_DIR"); v != "" {
		c.GMTEDDir = v
	}
	if v := os.Getenv("DEMGET_SRTM_BASE_URL"); v != "" {
		c.SRTMBaseURL = v
	}
	if v := os.Getenv("DEMGET_GMTED_BASE_URL"); v != "" {
		c.GMTEDBaseURL = v
	}
	if v := os.Getenv("DEMGET_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("parse DEMGET_TIMEOUT: %w", err)
		}
		c.Timeout = d
	}

	return nil
}
