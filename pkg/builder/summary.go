package builder

import (
	"fmt"
	"strings"

	"github.com/corehatch/statecover/pkg/dimension"
)

// Summary returns a short human-readable report of the builder's
// registered transitions, setups, and checkers, plus the transitions that
// would be missing if it built a graph from combos right now.
func (b *Builder) Summary(combos []*dimension.Combination) string {
	var out strings.Builder
	fmt.Fprintf(&out, "=== Builder Summary ===\n")
	fmt.Fprintf(&out, "dimensions: %d\n", b.space.Len())
	fmt.Fprintf(&out, "registered transitions: %d\n", len(b.transitions))
	fmt.Fprintf(&out, "registered setups: %d\n", len(b.setups))
	fmt.Fprintf(&out, "registered checkers: %d\n", len(b.checkers))
	fmt.Fprintf(&out, "invariants: %d\n", len(b.invariants))

	if len(combos) == 0 {
		return out.String()
	}

	missing := b.MissingTransitions(combos)
	fmt.Fprintf(&out, "combinations: %d\n", len(combos))
	if len(missing) > 0 {
		fmt.Fprintf(&out, "missing transitions: %d\n", len(missing))
		for _, key := range missing {
			fmt.Fprintf(&out, "  - %s\n", key)
		}
	} else {
		fmt.Fprintf(&out, "missing transitions: none\n")
	}
	return out.String()
}
