package portconf

import (
	"fmt"
	"strings"

	"github.com/valyala/fasttemplate"

	"github.com/autoport-tools/autoport/internal/config"
	"github.com/autoport-tools/autoport/internal/errors"
	"github.com/autoport-tools/autoport/internal/log"
)

// Applier pushes a rule's configuration lines to an interface as one ordered
// command batch: enter configure mode, reset the interface to defaults, enter
// the interface context, then the configuration lines in rule order.
type Applier struct {
	client    SwitchClient
	resetTmpl string
	enterTmpl string
}

// NewApplier creates an Applier using the given reset/enter command templates.
// Empty templates fall back to the defaults.
func NewApplier(client SwitchClient, resetTmpl, enterTmpl string) *Applier {
	if resetTmpl == "" {
		resetTmpl = config.DefaultResetTemplate
	}
	if enterTmpl == "" {
		enterTmpl = config.DefaultEnterTemplate
	}
	return &Applier{
		client:    client,
		resetTmpl: resetTmpl,
		enterTmpl: enterTmpl,
	}
}

// Apply issues the configuration batch. Fire-and-forget: a transport failure
// is surfaced but not retried.
func (a *Applier) Apply(iface string, lines []string) error {
	cmds := make([]string, 0, len(lines)+3)
	cmds = append(cmds,
		"configure",
		renderCommand(a.resetTmpl, iface),
		renderCommand(a.enterTmpl, iface),
	)
	cmds = append(cmds, lines...)

	log.Debugf("Applying configuration to %s: %v", iface, cmds)

	if err := a.client.Configure(cmds); err != nil {
		return errors.NewApplyError(fmt.Sprintf("failed to configure interface %s", iface), err)
	}
	return nil
}

func renderCommand(template, iface string) string {
	if !strings.Contains(template, "{{") {
		return template
	}

	t := fasttemplate.New(template, "{{", "}}")
	return t.ExecuteString(map[string]interface{}{
		config.CMD_TMPL_INTERFACE: iface,
	})
}
