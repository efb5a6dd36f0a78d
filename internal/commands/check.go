package commands

import (
	"flag"
	"fmt"

	"github.com/autoport-tools/autoport/internal/config"
	"github.com/autoport-tools/autoport/internal/log"
	"github.com/autoport-tools/autoport/internal/portconf"
	"github.com/autoport-tools/autoport/internal/rules"
)

// CreateCheckCommand creates the check subcommand: resolve and compare
// without writing anything to the switch.
func CreateCheckCommand() *CheckCommand {
	gc := &CheckCommand{
		fs: flag.NewFlagSet("check", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Interface, "i", "", "Interface to check")

	return gc
}

type CheckCommand struct {
	fs       *flag.FlagSet
	settings *config.Settings
	table    *rules.Table

	Interface string
}

func (g *CheckCommand) Name() string {
	return g.fs.Name()
}

func (g *CheckCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	if g.Interface == "" {
		return fmt.Errorf("interface is required (-i)")
	}

	settings, table, err := loadSettingsAndRules(ctx)
	if err != nil {
		return err
	}
	g.settings = settings
	g.table = table

	return nil
}

func (g *CheckCommand) Run() error {
	service, err := newService(g.settings, g.table)
	if err != nil {
		return err
	}

	outcome, err := service.Check(g.Interface)
	if err != nil {
		return err
	}

	switch outcome {
	case portconf.OutcomeNoMatch:
		log.Infof("%s: no rule matches, nothing would be applied", g.Interface)
	case portconf.OutcomeUpToDate:
		log.Infof("%s: configuration is up to date", g.Interface)
	case portconf.OutcomeOutOfSync:
		log.Warnf("%s: configuration differs, apply would reconfigure the interface", g.Interface)
	}

	return nil
}
