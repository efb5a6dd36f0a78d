package commands

import (
	"flag"
	"fmt"

	"github.com/autoport-tools/autoport/internal/config"
	"github.com/autoport-tools/autoport/internal/log"
	"github.com/autoport-tools/autoport/internal/rules"
)

// CreateResolveCommand creates the resolve subcommand: print which rule
// would be selected for an interface and why.
func CreateResolveCommand() *ResolveCommand {
	gc := &ResolveCommand{
		fs: flag.NewFlagSet("resolve", flag.ExitOnError),
	}

	gc.fs.StringVar(&gc.Interface, "i", "", "Interface to resolve a rule for")

	return gc
}

type ResolveCommand struct {
	fs       *flag.FlagSet
	settings *config.Settings
	table    *rules.Table

	Interface string
}

func (g *ResolveCommand) Name() string {
	return g.fs.Name()
}

func (g *ResolveCommand) Init(args []string, ctx *AppContext) error {
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

func (g *ResolveCommand) Run() error {
	client, err := newSwitchClient(g.settings)
	if err != nil {
		return err
	}

	addrs, err := client.ShowMACAddressTable(g.Interface)
	if err != nil {
		return err
	}

	rule, class, pattern := g.table.Explain(addrs)
	if rule == nil {
		log.Infof("%s: no rule matches (%d learned addresses)", g.Interface, len(addrs))
		return nil
	}

	log.Infof("%s: matched pattern %q (%s match)", g.Interface, pattern, class)
	for _, line := range rule.ConfigLines {
		fmt.Println("  " + line)
	}

	return nil
}
