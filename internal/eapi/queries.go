package eapi

import (
	"encoding/json"
	"strings"

	"github.com/autoport-tools/autoport/internal/errors"
	"github.com/autoport-tools/autoport/internal/log"
)

// ShowMACAddressTable returns the learned MAC addresses on an interface, in
// the order the switch reports them.
func (c *Client) ShowMACAddressTable(iface string) ([]string, error) {
	results, err := c.RunCmds([]string{"show mac address-table interface " + iface}, FormatJSON)
	if err != nil {
		return nil, err
	}

	var table macTableResult
	if err := json.Unmarshal(results[1], &table); err != nil {
		return nil, errors.NewTransportError("failed to parse mac address-table", err)
	}

	addrs := make([]string, 0, len(table.UnicastTable.TableEntries))
	for _, entry := range table.UnicastTable.TableEntries {
		addrs = append(addrs, entry.MACAddress)
	}

	log.Debugf("Interface %s has %d learned addresses: %v", iface, len(addrs), addrs)
	return addrs, nil
}

// ShowRunningConfig returns the running configuration of an interface as
// trimmed, non-empty lines. The leading "interface ..." header is kept; the
// comparator is responsible for discarding it.
func (c *Client) ShowRunningConfig(iface string) ([]string, error) {
	results, err := c.RunCmds([]string{"show running-config interfaces " + iface}, FormatText)
	if err != nil {
		return nil, err
	}

	var result textResult
	if err := json.Unmarshal(results[1], &result); err != nil {
		return nil, errors.NewTransportError("failed to parse running-config output", err)
	}

	var lines []string
	for _, line := range strings.Split(result.Output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// Configure pushes one ordered configuration batch to the switch.
func (c *Client) Configure(cmds []string) error {
	if _, err := c.RunCmds(cmds, FormatJSON); err != nil {
		return err
	}
	return nil
}
