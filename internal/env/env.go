package env

import (
	"sort"
	"strings"
)

// EntryVar names the variable that tells a launched command which catalog
// entry started it.
const EntryVar = "FLOAT_LAUNCHER_ENTRY"

func WithEntry(base []string, name string) []string {
	m := toMap(base)
	m[EntryVar] = name
	return fromMap(m)
}

func toMap(env []string) map[string]string {
	out := make(map[string]string, len(env))
	for _, kv := range env {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		out[k] = v
	}
	return out
}

func fromMap(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k, v := range m {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}
