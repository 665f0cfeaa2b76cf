package game

import (
	"fmt"
	"strings"
)

// DefaultLabels are the ten city names of the original board.
var DefaultLabels = []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

// Labels is an immutable, ordered label list: the label at position i names
// city index i in the distance table.
type Labels struct {
	names []string
	index map[string]int
}

// NewLabels copies names and builds the reverse index.
// Errors: ErrBadLabels for an empty list, an empty name or a duplicate.
// Complexity: O(n).
func NewLabels(names ...string) (Labels, error) {
	if len(names) == 0 {
		return Labels{}, fmt.Errorf("NewLabels: empty list: %w", ErrBadLabels)
	}
	l := Labels{
		names: append([]string(nil), names...),
		index: make(map[string]int, len(names)),
	}
	for i, name := range l.names {
		if name == "" {
			return Labels{}, fmt.Errorf("NewLabels: names[%d] is empty: %w", i, ErrBadLabels)
		}
		if _, dup := l.index[name]; dup {
			return Labels{}, fmt.Errorf("NewLabels: %q repeated: %w", name, ErrBadLabels)
		}
		l.index[name] = i
	}

	return l, nil
}

// MustLabels is NewLabels for static lists; it panics on error.
func MustLabels(names ...string) Labels {
	l, err := NewLabels(names...)
	if err != nil {
		panic(err)
	}

	return l
}

// Len returns the number of cities.
func (l Labels) Len() int { return len(l.names) }

// Names returns a copy of the label list.
func (l Labels) Names() []string { return append([]string(nil), l.names...) }

// Index returns the city index for name.
func (l Labels) Index(name string) (int, error) {
	i, ok := l.index[name]
	if !ok {
		return 0, fmt.Errorf("label %q: %w", name, ErrUnknownLabel)
	}

	return i, nil
}

// Indices translates names in order. Duplicates are translated as-is; set
// semantics are checked by the solvers.
func (l Labels) Indices(names []string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		idx, err := l.Index(name)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}

	return out, nil
}

// Label returns the label for index i, or "" when i is out of range.
func (l Labels) Label(i int) string {
	if i < 0 || i >= len(l.names) {
		return ""
	}

	return l.names[i]
}

// Route translates an index route into labels.
func (l Labels) Route(route []int) []string {
	out := make([]string, len(route))
	for i, idx := range route {
		out[i] = l.Label(idx)
	}

	return out
}

// ParseList splits "B,C, D" into ["B" "C" "D"], dropping empty fields.
func ParseList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}

	return out
}
