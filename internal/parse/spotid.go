package parse

import (
	"fmt"
	"regexp"
	"strconv"
)

var spotIDRe = regexp.MustCompile(`^spot-(\d+)$`)

// SpotNumber extracts the display number from a spot identifier like
// "spot-3".
func SpotNumber(id string) (int, error) {
	m := spotIDRe.FindStringSubmatch(id)
	if m == nil {
		return 0, fmt.Errorf("unable to parse spot identifier: %q", id)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, fmt.Errorf("unable to parse spot identifier: %q", id)
	}
	return n, nil
}
