package boss

import (
	"fmt"
	"strings"
)

// Weights holds one selection weight per ActionKind. Every entry is >= 1.
type Weights [NumActions]int

// NewWeights returns the starting table, all ones.
func NewWeights() Weights {
	var w Weights
	for i := range w {
		w[i] = 1
	}
	return w
}

func (w Weights) Total() int {
	total := 0
	for _, v := range w {
		total += v
	}
	return total
}

// Valid reports whether every weight is at least one.
func (w Weights) Valid() bool {
	for _, v := range w {
		if v < 1 {
			return false
		}
	}
	return true
}

// After returns the table following a draw of kind: the drawn kind drops to 1
// and every other kind grows by one.
func (w Weights) After(kind ActionKind) Weights {
	next := w
	for i := range next {
		if ActionKind(i) == kind {
			next[i] = 1
			continue
		}
		next[i]++
	}
	return next
}

func (w Weights) String() string {
	parts := make([]string, 0, NumActions)
	for i, v := range w {
		parts = append(parts, fmt.Sprintf("%s=%d", ActionKind(i), v))
	}
	return strings.Join(parts, " ")
}
