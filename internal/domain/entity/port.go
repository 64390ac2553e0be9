package entity

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// Port is a TCP port number as typed in the omnibox.
// No lower bound is enforced: zero and negative values parse successfully.
type Port int

const (
	// PortMax is the highest accepted port number.
	PortMax Port = 65535

	// DefaultScheme and DefaultHost build the navigation target.
	DefaultScheme = "https"
	DefaultHost   = "localhost"
)

// ErrInvalidPortInput is returned when typed text is not a number or exceeds PortMax.
var ErrInvalidPortInput = errors.New("invalid port input")

// ParsePort parses text the way a leading-numeric integer parser does:
// leading whitespace and an optional sign are accepted, digits are consumed
// up to the first non-digit, and anything after is ignored.
// "8080abc" parses to 8080, "abc" and "" fail.
func ParsePort(text string) (Port, error) {
	i := 0
	for i < len(text) && isSpace(text[i]) {
		i++
	}

	start := i
	if i < len(text) && (text[i] == '+' || text[i] == '-') {
		i++
	}

	digitsStart := i
	for i < len(text) && text[i] >= '0' && text[i] <= '9' {
		i++
	}
	if i == digitsStart {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPortInput, text)
	}

	n, err := strconv.ParseInt(text[start:i], 10, strconv.IntSize)
	if err != nil {
		// Too large is still a number and fails the upper bound. A negative
		// value past the int range cannot be kept, so it is rejected.
		if text[start] == '-' {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPortInput, text)
		}
		return PortMax + 1, nil
	}
	return Port(n), nil
}

// ValidatePortInput parses text and rejects values above PortMax.
func ValidatePortInput(text string) (Port, error) {
	p, err := ParsePort(text)
	if err != nil {
		return 0, err
	}
	if p > PortMax {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPortInput, text)
	}
	return p, nil
}

// String returns the decimal representation used for matching and display.
func (p Port) String() string {
	return strconv.Itoa(int(p))
}

// URL returns the navigation target for the port, e.g. https://localhost:8080.
func (p Port) URL(scheme, host string) string {
	if scheme == "" {
		scheme = DefaultScheme
	}
	if host == "" {
		host = DefaultHost
	}
	u := url.URL{Scheme: scheme, Host: host + ":" + p.String()}
	return u.String()
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
