package rules

import (
	"github.com/autoport-tools/autoport/internal/log"
)

// Resolve picks the single rule that applies to an interface, given the
// addresses learned on it in switch-reported order. It returns nil when no
// rule applies.
//
// Match precedence per learned address is exact > OUI > wildcard. An exact
// match returns immediately, mid-scan. For OUI and wildcard patterns the last
// rule in table order wins. The decision is made on the first learned address:
// the function returns once that address has been scanned against the whole
// table, whether or not it produced a match.
func (t *Table) Resolve(addrs []string) *Rule {
	rule, _, _ := t.Explain(addrs)
	return rule
}

// Explain is Resolve plus diagnostics: it also reports which match class
// decided the outcome and the rule-file pattern (as written) that matched.
func (t *Table) Explain(addrs []string) (*Rule, MatchClass, string) {
	for _, raw := range addrs {
		addr := Normalize(raw)
		oui := OUI(addr)

		log.Debugf("Learned address: %s (OUI %s)", addr, oui)

		var ouiMatch, defaultMatch *Rule
		var ouiPattern, defaultPattern string

		for i := range t.Rules {
			rule := &t.Rules[i]
			for _, rawPattern := range rule.Patterns {
				pattern := Normalize(rawPattern)

				if pattern == Wildcard {
					defaultMatch, defaultPattern = rule, rawPattern
				}
				if pattern == oui {
					ouiMatch, ouiPattern = rule, rawPattern
				}
				if pattern == addr {
					log.Debugf("Address %s matched exactly (pattern %q)", addr, rawPattern)
					return rule, MatchExact, rawPattern
				}
			}
		}

		if ouiMatch != nil {
			log.Debugf("Address %s matched by OUI (pattern %q)", addr, ouiPattern)
			return ouiMatch, MatchOUI, ouiPattern
		}
		if defaultMatch != nil {
			log.Debugf("Address %s fell through to the wildcard rule", addr)
			return defaultMatch, MatchDefault, defaultPattern
		}
		return nil, MatchNone, ""
	}

	return nil, MatchNone, ""
}
