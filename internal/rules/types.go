// Package rules implements the MAC/OUI rule table: loading it from a rule
// file, validating it, and resolving which rule applies to an interface given
// the addresses learned on it.
package rules

// Rule maps a set of address patterns to the interface configuration that
// should be active when one of the patterns is seen on a port. A pattern is
// an exact MAC address (12 hex digits), an OUI prefix (6 hex digits) or the
// wildcard "*". Patterns are matched after normalization, so any common
// delimiter style is accepted in the rule file.
type Rule struct {
	Patterns    []string `yaml:"macs" json:"macs" validate:"required,min=1,dive,required"`
	ConfigLines []string `yaml:"config" json:"config" validate:"required,min=1,dive,required"`
}

// Table is the ordered rule collection parsed from the rule file. Order is
// significant: when several rules carry the same OUI or wildcard pattern, the
// last one in file order wins. The table is immutable after Load.
type Table struct {
	Rules []Rule `yaml:"configs" json:"configs"`
}

// MatchClass is the kind of match a learned address triggered against a rule,
// in ascending priority order.
type MatchClass int

const (
	// MatchNone indicates no rule applied.
	MatchNone MatchClass = iota
	// MatchDefault indicates the wildcard pattern "*" applied.
	MatchDefault
	// MatchOUI indicates a 6-digit vendor prefix applied.
	MatchOUI
	// MatchExact indicates a full 12-digit address applied.
	MatchExact
)

// String returns the string representation of a MatchClass.
func (c MatchClass) String() string {
	switch c {
	case MatchNone:
		return "none"
	case MatchDefault:
		return "default"
	case MatchOUI:
		return "oui"
	case MatchExact:
		return "exact"
	default:
		return "unknown"
	}
}
