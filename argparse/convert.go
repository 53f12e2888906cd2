package argparse

import (
	"errors"
	"strconv"
	"strings"
)

var (
	errSyntax = errors.New("invalid syntax")
	errRange  = errors.New("value out of range")
)

// splitNumber separates an optional sign and picks the base from the prefix:
// 0x/0X is hexadecimal, a leading 0 followed by more digits is octal,
// anything else is decimal.
func splitNumber(s string) (neg bool, digits string, base int, ok bool) {
	if s != "" {
		switch s[0] {
		case '+':
			s = s[1:]
		case '-':
			neg = true
			s = s[1:]
		}
	}

	switch {
	case len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X'):
		return neg, s[2:], 16, len(s) > 2
	case len(s) >= 2 && s[0] == '0':
		return neg, s[1:], 8, true
	default:
		return neg, s, 10, s != ""
	}
}

func magnitude(s string) (neg bool, u uint64, err error) {
	neg, digits, base, ok := splitNumber(s)
	if !ok {
		return false, 0, errSyntax
	}
	// An explicit base keeps strconv from accepting underscores or 0b/0o.
	u, err = strconv.ParseUint(digits, base, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return false, 0, errRange
		}
		return false, 0, errSyntax
	}
	return neg, u, nil
}

// parseInt converts s to a signed integer that fits in bits.
func parseInt(s string, bits int) (int64, error) {
	neg, u, err := magnitude(s)
	if err != nil {
		return 0, err
	}
	limit := uint64(1) << (bits - 1)
	if neg {
		if u > limit {
			return 0, errRange
		}
		return int64(-u), nil
	}
	if u >= limit {
		return 0, errRange
	}
	return int64(u), nil
}

// parseUint converts s to an unsigned integer that fits in bits.
// Negative input is out of range rather than wrapped.
func parseUint(s string, bits int) (uint64, error) {
	neg, u, err := magnitude(s)
	if err != nil {
		return 0, err
	}
	if neg {
		return 0, errRange
	}
	if bits < 64 && u >= uint64(1)<<bits {
		return 0, errRange
	}
	return u, nil
}

func parseFloat(s string, bits int) (float64, error) {
	f, err := strconv.ParseFloat(s, bits)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, errRange
		}
		return 0, errSyntax
	}
	return f, nil
}

// parseBool accepts true/false in any case, or an integer where non-zero is true.
func parseBool(s string) (bool, error) {
	switch {
	case strings.EqualFold(s, "true"):
		return true, nil
	case strings.EqualFold(s, "false"):
		return false, nil
	}
	n, err := parseInt(s, 64)
	if err != nil {
		return false, err
	}
	return n != 0, nil
}
