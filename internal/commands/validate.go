package commands

import (
	"flag"
	"fmt"
	"strings"

	"github.com/autoport-tools/autoport/internal/log"
	"github.com/autoport-tools/autoport/internal/rules"
)

// CreateValidateCommand creates the validate subcommand: parse the rule file
// and print the resulting table without touching any switch.
func CreateValidateCommand() *ValidateCommand {
	gc := &ValidateCommand{
		fs: flag.NewFlagSet("validate", flag.ExitOnError),
	}

	return gc
}

type ValidateCommand struct {
	fs    *flag.FlagSet
	table *rules.Table
}

func (g *ValidateCommand) Name() string {
	return g.fs.Name()
}

func (g *ValidateCommand) Init(args []string, ctx *AppContext) error {
	if err := g.fs.Parse(args); err != nil {
		return err
	}

	_, table, err := loadSettingsAndRules(ctx)
	if err != nil {
		return err
	}
	g.table = table

	return nil
}

func (g *ValidateCommand) Run() error {
	log.Infof("Rule file is valid: %d rule(s)", len(g.table.Rules))

	for i, rule := range g.table.Rules {
		fmt.Printf("rule %d: macs=[%s]\n", i, strings.Join(rule.Patterns, ", "))
		for _, line := range rule.ConfigLines {
			fmt.Println("  " + line)
		}
	}

	return nil
}
