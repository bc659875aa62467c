package options

import (
	"fmt"
	"strings"
)

// Aggregator collects validation failures in the order they are found.
type Aggregator struct {
	messages []string
}

// Add records a failure.
func (a *Aggregator) Add(message string) {
	a.messages = append(a.messages, message)
}

// Addf records a formatted failure.
func (a *Aggregator) Addf(format string, args ...any) {
	a.Add(fmt.Sprintf(format, args...))
}

// Merge appends every failure of other.
func (a *Aggregator) Merge(other *Aggregator) {
	if other == nil {
		return
	}
	a.messages = append(a.messages, other.messages...)
}

// Empty reports whether no failure was recorded.
func (a *Aggregator) Empty() bool { return len(a.messages) == 0 }

// Len returns the number of failures.
func (a *Aggregator) Len() int { return len(a.messages) }

// Messages returns a copy of the failures.
func (a *Aggregator) Messages() []string {
	return append([]string(nil), a.messages...)
}

// Join returns the failures as a single ", "-separated string.
func (a *Aggregator) Join() string {
	return strings.Join(a.messages, ", ")
}
