// Package input reads sample files and the numeric values typed by users.
package input

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	tabint "github.com/Maxime2/tabulated-integral"
)

var ErrMalformedValue = errors.New("malformed value")

var piMultiple = regexp.MustCompile(`^([+-]?)\s*([0-9.]*)\s*\*?\s*pi$`)

// ParseValue parses a decimal number, a single fraction such as "3/4", or a
// multiple of pi such as "pi", "-2pi" or "0.5*pi". Fractions of pi ("pi/4")
// are accepted as well.
func ParseValue(s string) (float64, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return 0, fmt.Errorf("%w: empty", ErrMalformedValue)
	}

	if num, den, ok := strings.Cut(v, "/"); ok {
		if strings.Contains(den, "/") {
			return 0, fmt.Errorf("%w: %q has more than one '/'", ErrMalformedValue, s)
		}
		n, err := parseTerm(num)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedValue, s)
		}
		d, err := parseTerm(den)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrMalformedValue, s)
		}
		if d == 0 {
			return 0, fmt.Errorf("%w: %q divides by zero", ErrMalformedValue, s)
		}
		return n / d, nil
	}

	r, err := parseTerm(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedValue, s)
	}
	return r, nil
}

func parseTerm(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if m := piMultiple.FindStringSubmatch(s); m != nil {
		k := 1.0
		if m[2] != "" {
			var err error
			if k, err = strconv.ParseFloat(m[2], 64); err != nil {
				return 0, err
			}
		}
		if m[1] == "-" {
			k = -k
		}
		return k * math.Pi, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", s)
	}
	return v, nil
}

// ParseH parses a step size, which must be positive.
func ParseH(s string) (float64, error) {
	h, err := ParseValue(s)
	if err != nil {
		return 0, fmt.Errorf("%w: h: %v", tabint.ErrInvalidConfiguration, err)
	}
	if h <= 0 {
		return 0, fmt.Errorf("%w: h must be positive, got %v", tabint.ErrInvalidConfiguration, h)
	}
	return h, nil
}

// ParseN parses a step count: a positive integer, even under Simpson's rule.
// Integral decimals such as "4.0" are accepted.
func ParseN(s string, rule tabint.Rule) (int, error) {
	v, err := ParseValue(s)
	if err != nil {
		return 0, fmt.Errorf("%w: n: %v", tabint.ErrInvalidConfiguration, err)
	}
	if math.Floor(v) != v || v > math.MaxInt32 {
		return 0, fmt.Errorf("%w: n must be an integer, got %v", tabint.ErrInvalidConfiguration, v)
	}
	n := int(v)
	if n <= 0 {
		return 0, fmt.Errorf("%w: n must be positive, got %d", tabint.ErrInvalidConfiguration, n)
	}
	if rule == tabint.RuleSimpson && n%2 != 0 {
		return 0, fmt.Errorf("%w: n must be even for Simpson's rule, got %d", tabint.ErrInvalidConfiguration, n)
	}
	return n, nil
}
