package services

import (
	"strconv"
	"strings"
)

// nextID returns prefix followed by one more than the largest numeric
// suffix among ids carrying that prefix.
func nextID(ids []string, prefix string) string {
	var highest int64
	for _, id := range ids {
		rest, ok := strings.CutPrefix(id, prefix)
		if !ok {
			continue
		}
		if n, err := strconv.ParseInt(rest, 10, 64); err == nil && n > highest {
			highest = n
		}
	}
	return prefix + strconv.FormatInt(highest+1, 10)
}
