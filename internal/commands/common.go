package commands

import (
	"fmt"
	"time"

	"github.com/autoport-tools/autoport/internal/config"
	"github.com/autoport-tools/autoport/internal/eapi"
	"github.com/autoport-tools/autoport/internal/portconf"
	"github.com/autoport-tools/autoport/internal/rules"
)

// Runner is the interface every subcommand implements.
type Runner interface {
	Init(args []string, globalArgs *AppContext) error
	Run() error
	Name() string
}

// AppContext carries the global flag values into each subcommand. It is
// constructed once in main and never mutated afterwards.
type AppContext struct {
	SettingsPath string
	RulesPath    string
	Address      string
	Verbose      bool
}

// loadSettingsAndRules resolves the effective settings (flags over settings
// file over defaults) and loads the rule table they point at.
func loadSettingsAndRules(ctx *AppContext) (*config.Settings, *rules.Table, error) {
	settings, err := config.Load(ctx.SettingsPath)
	if err != nil {
		return nil, nil, err
	}
	settings.Override(ctx.Address, ctx.RulesPath)

	table, err := rules.Load(settings.Rules.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load rule file: %w", err)
	}

	return settings, table, nil
}

// newSwitchClient builds the eAPI client for the configured transport target.
func newSwitchClient(settings *config.Settings) (*eapi.Client, error) {
	timeout := time.Duration(settings.Transport.TimeoutSeconds) * time.Second

	if settings.Transport.Address == "" {
		return eapi.NewLocalClient(timeout), nil
	}
	return eapi.NewClient(settings.Transport.Address, timeout)
}

// newService wires the one-shot service for a run.
func newService(settings *config.Settings, table *rules.Table) (*portconf.Service, error) {
	client, err := newSwitchClient(settings)
	if err != nil {
		return nil, err
	}

	applier := portconf.NewApplier(client, settings.Commands.Reset, settings.Commands.Enter)
	return portconf.NewService(table, client, applier), nil
}
