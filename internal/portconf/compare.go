// Package portconf decides whether an interface needs reconfiguration and
// pushes the new configuration when it does.
package portconf

// NeedsUpdate reports whether the desired configuration differs from the live
// one. The first live line is discarded before comparing: a running-config
// dump for an interface always starts with the "interface ..." header, which
// has no counterpart in a rule's configuration lines. Comparison is
// order-insensitive.
func NeedsUpdate(live []string, desired []string) bool {
	if len(live) > 0 {
		live = live[1:]
	}
	return !equalAsSets(live, desired)
}

func equalAsSets(a, b []string) bool {
	setA := make(map[string]struct{}, len(a))
	for _, line := range a {
		setA[line] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, line := range b {
		setB[line] = struct{}{}
	}

	if len(setA) != len(setB) {
		return false
	}
	for line := range setA {
		if _, ok := setB[line]; !ok {
			return false
		}
	}
	return true
}
