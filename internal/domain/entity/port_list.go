package entity

import "strings"

// UsedPortList is the persisted, newest-first list of ports the user navigated to.
// Entries are unique.
type UsedPortList []Port

// Prepend returns a new list with p at the front and any previous occurrence removed.
func (l UsedPortList) Prepend(p Port) UsedPortList {
	out := make(UsedPortList, 0, len(l)+1)
	out = append(out, p)
	for _, existing := range l {
		if existing != p {
			out = append(out, existing)
		}
	}
	return out
}

// Matching returns up to limit ports whose decimal form contains text, in stored order.
// A non-positive limit means no limit.
func (l UsedPortList) Matching(text string, limit int) UsedPortList {
	out := make(UsedPortList, 0)
	for _, p := range l {
		if limit > 0 && len(out) >= limit {
			break
		}
		if strings.Contains(p.String(), text) {
			out = append(out, p)
		}
	}
	return out
}

// WithoutSuffixesOf returns the list minus every port whose decimal form text ends with.
// For text "3080" this drops both 3080 and 80.
func (l UsedPortList) WithoutSuffixesOf(text string) UsedPortList {
	out := make(UsedPortList, 0, len(l))
	for _, p := range l {
		if !strings.HasSuffix(text, p.String()) {
			out = append(out, p)
		}
	}
	return out
}

// Contains reports whether p is stored.
func (l UsedPortList) Contains(p Port) bool {
	for _, existing := range l {
		if existing == p {
			return true
		}
	}
	return false
}

// Dedupe drops repeated entries, keeping the first occurrence.
// Stored data written by other clients is not trusted to be unique.
func (l UsedPortList) Dedupe() UsedPortList {
	seen := make(map[Port]struct{}, len(l))
	out := make(UsedPortList, 0, len(l))
	for _, p := range l {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
