package main

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// profileConfig holds connection settings for a single profile.
type profileConfig struct {
	URL string `yaml:"url"`
}

// configFile is the ~/.bookingmx/config.yaml structure. A flat url is
// accepted alongside named profiles.
type configFile struct {
	URL           string                   `yaml:"url,omitempty"`
	Profiles      map[string]profileConfig `yaml:"profiles,omitempty"`
	ActiveProfile string                   `yaml:"active_profile,omitempty"`
}

// configPath returns the location of the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".bookingmx", "config.yaml"), nil
}

// loadConfigFile reads and parses the CLI config file.
func loadConfigFile() (string, *configFile, error) {
	cfgPath, err := configPath()
	if err != nil {
		return "", nil, err
	}
	data, err := os.ReadFile(cfgPath)
	if err != nil {
		return cfgPath, nil, err
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfgPath, nil, err
	}
	return cfgPath, &cfg, nil
}

// profileURL returns the URL of the active profile, falling back to the flat url.
func (c *configFile) profileURL() string {
	if c == nil {
		return ""
	}
	name := c.ActiveProfile
	if name == "" {
		name = "default"
	}
	if p, ok := c.Profiles[name]; ok && p.URL != "" {
		return p.URL
	}
	return c.URL
}

// resolveURL applies the precedence flag > BOOKINGMX_URL > config file > default.
func resolveURL(flag string, cfg *configFile) string {
	if flag != defaultURL {
		return flag
	}
	if v := os.Getenv("BOOKINGMX_URL"); v != "" {
		return v
	}
	if v := cfg.profileURL(); v != "" {
		return v
	}
	return defaultURL
}

func resolveConfig() {
	_, cfg, _ := loadConfigFile()
	flagURL = resolveURL(flagURL, cfg)
}

// writeConfig stores url as the default profile.
func writeConfig(url string) (string, error) {
	cfgPath, err := configPath()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(cfgPath), 0o700); err != nil {
		return "", err
	}

	cfg := configFile{
		Profiles:      map[string]profileConfig{"default": {URL: url}},
		ActiveProfile: "default",
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(cfgPath, data, 0o600); err != nil {
		return "", err
	}

	return cfgPath, nil
}
