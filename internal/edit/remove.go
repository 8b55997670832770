package edit

import "strings"

// RemoveRigidbodies drops every line containing signature, in any entity
// block. All other lines keep their order and bytes. It returns the edited
// lines and the number removed.
func RemoveRigidbodies(lines []string, signature string) ([]string, int) {
	out := make([]string, 0, len(lines))
	removed := 0
	for _, line := range lines {
		if strings.Contains(line, signature) {
			removed++
			continue
		}
		out = append(out, line)
	}
	return out, removed
}
