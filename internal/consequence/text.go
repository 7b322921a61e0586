package consequence

import (
	"strings"

	"github.com/talgya/backlot-mogul/internal/talent"
)

func headlineName(key talent.Archetype) string {
	return strings.ToUpper(strings.TrimPrefix(talent.Name(key), "The "))
}

func joinNames(keys []talent.Archetype) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = talent.Name(k)
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
