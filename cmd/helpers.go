package cmd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

func isJSONFile(filename string) bool {
	return strings.HasSuffix(strings.ToLower(filename), ".json")
}

// parseBound reads the optional second positional; an empty value defers to
// the config default.
func parseBound(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	bound, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Errorf("invalid smoothness bound %q", s)
	}
	return bound, nil
}
