package reconcile

import "strings"

// Normalize collapses whitespace runs to a single space, trims the ends and
// lower-cases the result. All value comparisons go through Normalize; an
// absent value normalizes to "" and never matches anything.
func Normalize(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), " "))
}

// tally counts normalized values and remembers the order in which each
// distinct value was first added, so ties resolve the same way every run.
type tally struct {
	order  []string
	counts map[string]int
}

func newTally(capacity int) *tally {
	return &tally{
		order:  make([]string, 0, capacity),
		counts: make(map[string]int, capacity),
	}
}

func (t *tally) add(key string) {
	if _, seen := t.counts[key]; !seen {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

// mode returns the key with the highest count. Among equal counts the key
// added first wins. ok is false when nothing was added.
func (t *tally) mode() (key string, count int, ok bool) {
	for _, k := range t.order {
		if c := t.counts[k]; c > count {
			key, count, ok = k, c, true
		}
	}
	return key, count, ok
}

// PickCanonical returns the statistical mode of values after normalization,
// expressed as the first original value that normalizes to the winning form.
// Values that normalize to "" do not vote. When nothing votes the result is
// the first value with non-empty normalized form, which in practice means "".
func PickCanonical(values []string) string {
	votes := newTally(len(values))
	for _, v := range values {
		if key := Normalize(v); key != "" {
			votes.add(key)
		}
	}

	if best, _, ok := votes.mode(); ok {
		for _, v := range values {
			if Normalize(v) == best {
				return v
			}
		}
	}

	for _, v := range values {
		if Normalize(v) != "" {
			return v
		}
	}
	return ""
}
