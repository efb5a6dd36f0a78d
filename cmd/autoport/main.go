package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/autoport-tools/autoport/internal/commands"
	"github.com/autoport-tools/autoport/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.RulesPath, "rules", "", "Path to the rule file (default: autoport.conf next to the binary)")
	flag.StringVar(&ctx.SettingsPath, "settings", "", "Path to an optional TOML settings file")
	flag.StringVar(&ctx.Address, "address", "", "Switch eAPI address as user:password@host (default: local command-api socket)")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Auto Port Config\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  apply                   Configure the interface according to the matching rule\n")
		fmt.Fprintf(os.Stderr, "  check                   Report whether the interface configuration is up to date\n")
		fmt.Fprintf(os.Stderr, "  resolve                 Show which rule matches the interface\n")
		fmt.Fprintf(os.Stderr, "  validate                Parse and print the rule file\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateApplyCommand(),
		commands.CreateCheckCommand(),
		commands.CreateResolveCommand(),
		commands.CreateValidateCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
