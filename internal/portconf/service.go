package portconf

import (
	"github.com/autoport-tools/autoport/internal/log"
	"github.com/autoport-tools/autoport/internal/rules"
)

// SwitchClient is the view of the eAPI client this package needs.
type SwitchClient interface {
	ShowMACAddressTable(iface string) ([]string, error)
	ShowRunningConfig(iface string) ([]string, error)
	Configure(cmds []string) error
}

// Outcome is the result of one interface run.
type Outcome int

const (
	// OutcomeUnknown means the run failed before a decision was reached.
	OutcomeUnknown Outcome = iota
	// OutcomeNoMatch means no rule resolved for the interface.
	OutcomeNoMatch
	// OutcomeUpToDate means the resolved configuration is already active.
	OutcomeUpToDate
	// OutcomeOutOfSync means an update is needed but was not pushed (check mode).
	OutcomeOutOfSync
	// OutcomeApplied means the configuration was pushed.
	OutcomeApplied
)

// String returns the string representation of an Outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeNoMatch:
		return "no-match"
	case OutcomeUpToDate:
		return "up-to-date"
	case OutcomeOutOfSync:
		return "out-of-sync"
	case OutcomeApplied:
		return "applied"
	default:
		return "unknown"
	}
}

// Service runs the per-interface decision: resolve a rule from the learned
// addresses, compare against the live configuration, apply on mismatch. It is
// constructed once per invocation and holds no mutable state.
type Service struct {
	rules   *rules.Table
	client  SwitchClient
	applier *Applier
}

// NewService creates a Service for one run.
func NewService(table *rules.Table, client SwitchClient, applier *Applier) *Service {
	return &Service{
		rules:   table,
		client:  client,
		applier: applier,
	}
}

// Run performs the full one-shot decision for an interface, pushing the
// configuration if it differs from the live one.
func (s *Service) Run(iface string) (Outcome, error) {
	return s.run(iface, false)
}

// Check performs the same decision without writing to the switch.
func (s *Service) Check(iface string) (Outcome, error) {
	return s.run(iface, true)
}

func (s *Service) run(iface string, checkOnly bool) (Outcome, error) {
	addrs, err := s.client.ShowMACAddressTable(iface)
	if err != nil {
		return OutcomeUnknown, err
	}

	rule := s.rules.Resolve(addrs)
	if rule == nil {
		log.Debugf("No rule resolved for interface %s", iface)
		return OutcomeNoMatch, nil
	}

	live, err := s.client.ShowRunningConfig(iface)
	if err != nil {
		return OutcomeUnknown, err
	}

	if !NeedsUpdate(live, rule.ConfigLines) {
		log.Debugf("Interface %s already has the desired configuration", iface)
		return OutcomeUpToDate, nil
	}

	if checkOnly {
		return OutcomeOutOfSync, nil
	}

	if err := s.applier.Apply(iface, rule.ConfigLines); err != nil {
		return OutcomeUnknown, err
	}

	return OutcomeApplied, nil
}
