package eapi

import (
	"encoding/json"
	"fmt"
)

// DefaultSocketPath is the command-api unix socket on the switch itself.
const DefaultSocketPath = "/var/run/command-api.sock"

// Format selects the response encoding of a runCmds call. Most show commands
// support json; running-config dumps are only available as text.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// MACTableEntry is a single learned address in the switch MAC address-table.
type MACTableEntry struct {
	MACAddress string `json:"macAddress"`
	Interface  string `json:"interface"`
	VlanID     int    `json:"vlanId"`
	EntryType  string `json:"entryType"`
}

// macTableResult is the json result of "show mac address-table interface X".
type macTableResult struct {
	UnicastTable struct {
		TableEntries []MACTableEntry `json:"tableEntries"`
	} `json:"unicastTable"`
}

// textResult is the shape of any command result requested in text format.
type textResult struct {
	Output string `json:"output"`
}

// rpcRequest is the JSON-RPC 2.0 envelope of a runCmds call.
type rpcRequest struct {
	JSONRPC string    `json:"jsonrpc"`
	Method  string    `json:"method"`
	Params  rpcParams `json:"params"`
	ID      string    `json:"id"`
}

type rpcParams struct {
	Version int      `json:"version"`
	Cmds    []string `json:"cmds"`
	Format  Format   `json:"format"`
}

// rpcResponse is the JSON-RPC 2.0 envelope of a runCmds response. Result holds
// one raw record per command, in command order.
type rpcResponse struct {
	JSONRPC string            `json:"jsonrpc"`
	Result  []json.RawMessage `json:"result"`
	Error   *rpcError         `json:"error"`
	ID      string            `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("eAPI error %d: %s", e.Code, e.Message)
}
