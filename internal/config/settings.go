package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/autoport-tools/autoport/internal/errors"
	"github.com/autoport-tools/autoport/internal/log"
)

// Template placeholder available in the applier command templates.
const CMD_TMPL_INTERFACE = "interface"

const (
	DefaultResetTemplate  = "default interface {{interface}}"
	DefaultEnterTemplate  = "interface {{interface}}"
	DefaultTimeoutSeconds = 30
	DefaultRulesFileName  = "autoport.conf"
)

// Settings are the tool-level settings, loaded from an optional TOML file.
// CLI flags take precedence over file values, file values over defaults.
type Settings struct {
	Transport TransportSettings `toml:"transport"`
	Rules     RulesSettings     `toml:"rules"`
	Commands  CommandSettings   `toml:"commands"`
}

type TransportSettings struct {
	// Address is the switch eAPI target ("user:pass@host" or a full URL).
	// Empty means the local command-api unix socket.
	Address        string `toml:"address"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type RulesSettings struct {
	Path string `toml:"path"`
}

type CommandSettings struct {
	// Reset and Enter are the commands issued before the configuration lines
	// when applying. "{{interface}}" is replaced with the interface name.
	Reset string `toml:"reset"`
	Enter string `toml:"enter"`
}

// Default returns settings with every field at its built-in default.
func Default() *Settings {
	return &Settings{
		Transport: TransportSettings{
			Address:        "",
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
		Rules: RulesSettings{
			Path: defaultRulesPath(),
		},
		Commands: CommandSettings{
			Reset: DefaultResetTemplate,
			Enter: DefaultEnterTemplate,
		},
	}
}

// Load reads a TOML settings file and overlays it on the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (*Settings, error) {
	settings := Default()

	if path == "" {
		return settings, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read settings file %s", path), err)
	}

	if err := toml.Unmarshal(content, settings); err != nil {
		var derr *toml.DecodeError
		if stderrors.As(err, &derr) {
			log.Errorf(derr.String())
			row, col := derr.Position()
			log.Errorf("Error at line %d, column %d", row, col)
			return nil, errors.NewConfigError(fmt.Sprintf("failed to parse settings file %s", path), nil)
		}
		return nil, errors.NewConfigError(fmt.Sprintf("failed to parse settings file %s", path), err)
	}

	settings.fillDefaults()

	log.Debugf("Settings file loaded: %s", path)
	return settings, nil
}

// Override applies CLI flag values on top of the loaded settings. Empty flag
// values leave the corresponding setting untouched.
func (s *Settings) Override(address, rulesPath string) {
	if address != "" {
		s.Transport.Address = address
	}
	if rulesPath != "" {
		s.Rules.Path = rulesPath
	}
}

// fillDefaults restores defaults for fields the settings file left empty.
func (s *Settings) fillDefaults() {
	if s.Transport.TimeoutSeconds <= 0 {
		s.Transport.TimeoutSeconds = DefaultTimeoutSeconds
	}
	if s.Rules.Path == "" {
		s.Rules.Path = defaultRulesPath()
	}
	if s.Commands.Reset == "" {
		s.Commands.Reset = DefaultResetTemplate
	}
	if s.Commands.Enter == "" {
		s.Commands.Enter = DefaultEnterTemplate
	}
}

// defaultRulesPath is the rule file colocated with the binary, matching the
// behavior operators expect when the tool is dropped onto a switch flash.
func defaultRulesPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultRulesFileName
	}
	return filepath.Join(filepath.Dir(exe), DefaultRulesFileName)
}
