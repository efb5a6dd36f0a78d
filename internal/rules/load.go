package rules

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/autoport-tools/autoport/internal/errors"
	"github.com/autoport-tools/autoport/internal/log"
)

var validate = validator.New()

var hexDigits = regexp.MustCompile(`^[0-9a-f]+$`)

// parserAttempt is one entry in the ordered list of rule-file deserializers.
type parserAttempt struct {
	name      string
	unmarshal func(data []byte, v interface{}) error
}

// YAML is tried first, JSON second. A file parseable as neither is a fatal
// configuration error carrying both parser messages.
var parserAttempts = []parserAttempt{
	{"YAML", yaml.Unmarshal},
	{"JSON", json.Unmarshal},
}

// Load reads, parses and validates a rule file.
func Load(path string) (*Table, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("failed to read rule file %s", path), err)
	}

	table, err := Parse(content)
	if err != nil {
		return nil, err
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}

	return table, nil
}

// Parse deserializes rule-file content, trying each supported serialization
// in order.
func Parse(content []byte) (*Table, error) {
	var failures []error

	for _, p := range parserAttempts {
		var table Table
		if err := p.unmarshal(content, &table); err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", p.name, err))
			continue
		}
		log.Debugf("Rule file parsed as %s", p.name)
		return &table, nil
	}

	return nil, errors.NewConfigError("rule file is neither valid YAML nor valid JSON", stderrors.Join(failures...))
}

// Validate checks the table structure: every rule needs at least one pattern
// and at least one configuration line. Patterns that cannot ever match (not
// the wildcard and not 6 or 12 hex digits after normalization) are reported
// as warnings but kept, since matching is plain string equality and such a
// pattern is harmless.
func (t *Table) Validate() error {
	for i := range t.Rules {
		rule := &t.Rules[i]

		if err := validate.Struct(rule); err != nil {
			var verrs validator.ValidationErrors
			if stderrors.As(err, &verrs) {
				return errors.NewRulesError(fmt.Sprintf("rule %d is invalid", i), verrs)
			}
			return errors.NewRulesError(fmt.Sprintf("rule %d is invalid", i), err)
		}

		for _, pattern := range rule.Patterns {
			if !plausiblePattern(pattern) {
				log.Warnf("Rule %d: pattern %q is neither %q nor 6/12 hex digits and will never match", i, pattern, Wildcard)
			}
		}
	}

	return nil
}

func plausiblePattern(pattern string) bool {
	p := Normalize(pattern)
	if p == Wildcard {
		return true
	}
	if len(p) != ouiLength && len(p) != addressLength {
		return false
	}
	return hexDigits.MatchString(p)
}
