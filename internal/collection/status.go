package collection

import "strings"

// StatusAll is the filter value that matches every status.
const StatusAll = "all"

// StatusSet is the closed set of valid status values for one entity
// kind. There is no transition graph: any member may follow any other;
// transition legality is the server's responsibility.
type StatusSet []string

// Valid reports whether v is a member of the set.
func (s StatusSet) Valid(v string) bool {
	for _, opt := range s {
		if opt == v {
			return true
		}
	}
	return false
}

// Next returns the member after current, wrapping around. Unknown
// values start at the first member.
func (s StatusSet) Next(current string) string {
	if len(s) == 0 {
		return current
	}
	for i, opt := range s {
		if opt == current {
			return s[(i+1)%len(s)]
		}
	}
	return s[0]
}

// Prev returns the member before current, wrapping around.
func (s StatusSet) Prev(current string) string {
	if len(s) == 0 {
		return current
	}
	for i, opt := range s {
		if opt == current {
			return s[(i-1+len(s))%len(s)]
		}
	}
	return s[0]
}

// String renders the set for prompts, e.g. "pending/confirmed/completed".
func (s StatusSet) String() string {
	return strings.Join(s, "/")
}
