// Package report renders posterior sets as indented text, one block per
// node in declaration order.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/beliefnet/beliefnet/internal/domain"
)

// Write streams the posterior report to w. Each node contributes its
// name on one line followed by one indented line per domain value, in
// canonical domain order, with probabilities rounded to two decimals.
func Write(w io.Writer, set *domain.PosteriorSet) error {
	if set == nil {
		return nil
	}
	for _, name := range set.Names() {
		dist, ok := set.Get(name)
		if !ok {
			continue
		}
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
		for _, v := range dist.Domain().Values() {
			if _, err := fmt.Fprintf(w, "    %s: %.2f\n", v, dist.Probability(v)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Render returns the report as a string.
func Render(set *domain.PosteriorSet) string {
	var b strings.Builder
	// strings.Builder never returns a write error.
	_ = Write(&b, set)
	return b.String()
}
