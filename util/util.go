package util

import (
	"math/big"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// ParseNum parses a candidate integer from the command line or a batch file.
// Decimal is the default; a 0x prefix switches to hex since RSA moduli are
// usually dumped that way. Underscore separators are tolerated.
func ParseNum(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty number")
	}
	s = strings.ReplaceAll(s, "_", "")

	base := 10
	digits := s
	negative := false
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	}
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		base = 16
		digits = digits[2:]
	}
	if digits == "" || strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
		return nil, errors.Errorf("invalid number %q", s)
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, errors.Errorf("invalid number %q", s)
	}
	if negative {
		n.Neg(n)
	}
	return n, nil
}

func StringInSlice(a string, list []string) bool {
	for _, b := range list {
		if b == a {
			return true
		}
	}
	return false
}

// IsTerminal reports whether stdout is a tty; piped output drops color.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
