// Package mocks provides mock implementations for testing.
//
// This package should ONLY be imported in test files (_test.go).
// The Go toolchain will automatically exclude this package from production
// builds since it's not imported in any production code.
package mocks

// MockSwitchClient is a mock implementation of the portconf.SwitchClient
// interface.
//
// It allows tests to provide custom behavior for each method through function
// fields. If a function field is nil, a sensible default implementation is
// used. Configure calls are recorded so tests can assert on the exact command
// batches that would reach the switch.
type MockSwitchClient struct {
	// ShowMACAddressTableFunc is called by ShowMACAddressTable if not nil.
	ShowMACAddressTableFunc func(iface string) ([]string, error)

	// ShowRunningConfigFunc is called by ShowRunningConfig if not nil.
	ShowRunningConfigFunc func(iface string) ([]string, error)

	// ConfigureFunc is called by Configure if not nil.
	ConfigureFunc func(cmds []string) error

	// ConfigureCalls records every batch passed to Configure.
	ConfigureCalls [][]string
}

// NewMockSwitchClient creates a mock with default behavior: an empty MAC
// table, an empty running config and successful Configure calls.
func NewMockSwitchClient() *MockSwitchClient {
	return &MockSwitchClient{}
}

// ShowMACAddressTable returns the learned addresses on an interface.
// Default: no addresses learned.
func (m *MockSwitchClient) ShowMACAddressTable(iface string) ([]string, error) {
	if m.ShowMACAddressTableFunc != nil {
		return m.ShowMACAddressTableFunc(iface)
	}
	return nil, nil
}

// ShowRunningConfig returns the live interface configuration.
// Default: just the interface header line.
func (m *MockSwitchClient) ShowRunningConfig(iface string) ([]string, error) {
	if m.ShowRunningConfigFunc != nil {
		return m.ShowRunningConfigFunc(iface)
	}
	return []string{"interface " + iface}, nil
}

// Configure records the batch and delegates to ConfigureFunc if set.
func (m *MockSwitchClient) Configure(cmds []string) error {
	m.ConfigureCalls = append(m.ConfigureCalls, cmds)
	if m.ConfigureFunc != nil {
		return m.ConfigureFunc(cmds)
	}
	return nil
}
