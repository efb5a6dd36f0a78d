package portconf

import (
	"errors"
	"reflect"
	"testing"

	"github.com/autoport-tools/autoport/internal/mocks"
	"github.com/autoport-tools/autoport/internal/rules"
)

func newTestService(table *rules.Table, mock *mocks.MockSwitchClient) *Service {
	return NewService(table, mock, NewApplier(mock, "", ""))
}

func TestService_Run_OUIBeatsDefaultAndApplies(t *testing.T) {
	table := &rules.Table{Rules: []rules.Rule{
		{Patterns: []string{"*"}, ConfigLines: []string{"switchport mode access", "switchport access vlan 10"}},
		{Patterns: []string{"aabbcc"}, ConfigLines: []string{"switchport mode trunk"}},
	}}

	mock := mocks.NewMockSwitchClient()
	mock.ShowMACAddressTableFunc = func(iface string) ([]string, error) {
		return []string{"aa:bb:cc:11:22:33"}, nil
	}
	mock.ShowRunningConfigFunc = func(iface string) ([]string, error) {
		// Only the header line: empty config after stripping.
		return []string{"interface Ethernet1"}, nil
	}

	outcome, err := newTestService(table, mock).Run("Ethernet1")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if outcome != OutcomeApplied {
		t.Fatalf("Outcome = %v, want %v", outcome, OutcomeApplied)
	}

	want := []string{
		"configure",
		"default interface Ethernet1",
		"interface Ethernet1",
		"switchport mode trunk",
	}
	if len(mock.ConfigureCalls) != 1 || !reflect.DeepEqual(mock.ConfigureCalls[0], want) {
		t.Errorf("Configure batches = %v, want one batch %v", mock.ConfigureCalls, want)
	}
}

func TestService_Run_NoMatch(t *testing.T) {
	table := &rules.Table{Rules: []rules.Rule{
		{Patterns: []string{"ddeeff"}, ConfigLines: []string{"switchport mode trunk"}},
	}}

	mock := mocks.NewMockSwitchClient()
	mock.ShowMACAddressTableFunc = func(iface string) ([]string, error) {
		return []string{"aa:bb:cc:11:22:33"}, nil
	}

	outcome, err := newTestService(table, mock).Run("Ethernet1")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if outcome != OutcomeNoMatch {
		t.Errorf("Outcome = %v, want %v", outcome, OutcomeNoMatch)
	}
	if len(mock.ConfigureCalls) != 0 {
		t.Errorf("Expected no Configure calls, got %v", mock.ConfigureCalls)
	}
}

func TestService_Run_NoLearnedAddresses(t *testing.T) {
	table := &rules.Table{Rules: []rules.Rule{
		{Patterns: []string{"*"}, ConfigLines: []string{"shutdown"}},
	}}

	mock := mocks.NewMockSwitchClient()

	outcome, err := newTestService(table, mock).Run("Ethernet1")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if outcome != OutcomeNoMatch {
		t.Errorf("Outcome = %v, want %v", outcome, OutcomeNoMatch)
	}
}

func TestService_Run_AlreadyCorrect(t *testing.T) {
	table := &rules.Table{Rules: []rules.Rule{
		{Patterns: []string{"*"}, ConfigLines: []string{"switchport mode trunk", "no shutdown"}},
	}}

	mock := mocks.NewMockSwitchClient()
	mock.ShowMACAddressTableFunc = func(iface string) ([]string, error) {
		return []string{"001122334455"}, nil
	}
	mock.ShowRunningConfigFunc = func(iface string) ([]string, error) {
		// Same lines, different order, plus the header.
		return []string{"interface Ethernet1", "no shutdown", "switchport mode trunk"}, nil
	}

	outcome, err := newTestService(table, mock).Run("Ethernet1")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if outcome != OutcomeUpToDate {
		t.Errorf("Outcome = %v, want %v", outcome, OutcomeUpToDate)
	}
	if len(mock.ConfigureCalls) != 0 {
		t.Errorf("Expected no Configure calls for an up-to-date interface, got %v", mock.ConfigureCalls)
	}
}

func TestService_Check_DoesNotWrite(t *testing.T) {
	table := &rules.Table{Rules: []rules.Rule{
		{Patterns: []string{"*"}, ConfigLines: []string{"switchport mode trunk"}},
	}}

	mock := mocks.NewMockSwitchClient()
	mock.ShowMACAddressTableFunc = func(iface string) ([]string, error) {
		return []string{"001122334455"}, nil
	}

	outcome, err := newTestService(table, mock).Check("Ethernet1")
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if outcome != OutcomeOutOfSync {
		t.Errorf("Outcome = %v, want %v", outcome, OutcomeOutOfSync)
	}
	if len(mock.ConfigureCalls) != 0 {
		t.Errorf("Check must not write, got Configure calls %v", mock.ConfigureCalls)
	}
}

func TestService_Run_MACTableFailureAborts(t *testing.T) {
	table := &rules.Table{Rules: []rules.Rule{
		{Patterns: []string{"*"}, ConfigLines: []string{"shutdown"}},
	}}

	mock := mocks.NewMockSwitchClient()
	mock.ShowMACAddressTableFunc = func(iface string) ([]string, error) {
		return nil, errors.New("switch unreachable")
	}

	outcome, err := newTestService(table, mock).Run("Ethernet1")
	if err == nil {
		t.Fatal("Expected error when the MAC table query fails")
	}
	if outcome != OutcomeUnknown {
		t.Errorf("Outcome = %v, want %v", outcome, OutcomeUnknown)
	}
	if len(mock.ConfigureCalls) != 0 {
		t.Errorf("Expected no writes after a query failure, got %v", mock.ConfigureCalls)
	}
}

func TestService_Run_RunningConfigFailureAborts(t *testing.T) {
	table := &rules.Table{Rules: []rules.Rule{
		{Patterns: []string{"*"}, ConfigLines: []string{"shutdown"}},
	}}

	mock := mocks.NewMockSwitchClient()
	mock.ShowMACAddressTableFunc = func(iface string) ([]string, error) {
		return []string{"001122334455"}, nil
	}
	mock.ShowRunningConfigFunc = func(iface string) ([]string, error) {
		return nil, errors.New("switch unreachable")
	}

	if _, err := newTestService(table, mock).Run("Ethernet1"); err == nil {
		t.Fatal("Expected error when the running-config query fails")
	}
	if len(mock.ConfigureCalls) != 0 {
		t.Errorf("Expected no writes after a query failure, got %v", mock.ConfigureCalls)
	}
}

func TestOutcome_String(t *testing.T) {
	tests := map[Outcome]string{
		OutcomeNoMatch:   "no-match",
		OutcomeUpToDate:  "up-to-date",
		OutcomeOutOfSync: "out-of-sync",
		OutcomeApplied:   "applied",
		OutcomeUnknown:   "unknown",
	}

	for outcome, want := range tests {
		if got := outcome.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", outcome, got, want)
		}
	}
}
