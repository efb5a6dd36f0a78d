package commands

import (
	"flag"
	"fmt"

	"github.com/autoport-tools/autoport/internal/config"
	"github.com/autoport-tools/autoport/internal/log"
	"github.com/autoport-tools/autoport/internal/portconf"
	"github.com/autoport-tools/autoport/internal/rules"
)

// CreateApplyCommand creates the apply subcommand: the full one-shot run.
func CreateApplyCommand() *ApplyCommand {
	gc := &ApplyCommand{
		fs: flag.NewFlagSet("apply", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Interface, "i", "", "Interface that has changed state")

	return gc
}

type ApplyCommand struct {
	fs       *flag.FlagSet
	settings *config.Settings
	table    *rules.Table

	Interface string
}

func (g *ApplyCommand) Name() string {
	return g.fs.Name()
}

func (g *ApplyCommand) Init(args []string, ctx *AppContext) error {
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

func (g *ApplyCommand) Run() error {
	service, err := newService(g.settings, g.table)
	if err != nil {
		return err
	}

	outcome, err := service.Run(g.Interface)
	if err != nil {
		return err
	}

	switch outcome {
	case portconf.OutcomeNoMatch:
		log.Debugf("No configuration to apply for %s", g.Interface)
	case portconf.OutcomeUpToDate:
		log.Debugf("Interface %s is already configured as desired", g.Interface)
	case portconf.OutcomeApplied:
		log.Infof("Applied configuration to %s", g.Interface)
	}

	return nil
}
