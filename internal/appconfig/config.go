package appconfig

import (
	"os"
	"path/filepath"

	"pkt.systems/coinflip/schema"
)

// Config is the top-level application configuration.
type Config struct {
	ConfigVersion int           `mapstructure:"config_version" yaml:"config_version"`
	Seed          uint64        `mapstructure:"seed" yaml:"seed"`
	Display       DisplayConfig `mapstructure:"display" yaml:"display"`
	SSH           SSHConfig     `mapstructure:"ssh" yaml:"ssh"`
}

// CurrentConfigVersion marks the supported config version.
const CurrentConfigVersion = 1

// DisplayConfig controls how the interactive menu presents output.
type DisplayConfig struct {
	PageLines   int  `mapstructure:"page_lines" yaml:"page_lines"`
	ClearScreen bool `mapstructure:"clear_screen" yaml:"clear_screen"`
}

// SSHConfig configures the SSH server.
type SSHConfig struct {
	Addr        string `mapstructure:"addr" yaml:"addr"`
	HostKeyPath string `mapstructure:"host_key_path" yaml:"host_key_path"`
}

// SessionConfig returns the per-session settings derived from cfg.
func (c Config) SessionConfig() schema.SessionConfig {
	return schema.SessionConfig{
		Seed:        c.Seed,
		PageLines:   c.Display.PageLines,
		ClearScreen: c.Display.ClearScreen,
	}
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Seed:          0,
		Display: DisplayConfig{
			PageLines:   schema.DefaultPageLines,
			ClearScreen: true,
		},
		SSH: SSHConfig{
			Addr:        "127.0.0.1:27522",
			HostKeyPath: filepath.Join(home, ".coinflip", "ssh_host_key"),
		},
	}, nil
}

// DefaultConfigPath returns the standard config path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".coinflip", "config.yaml"), nil
}
