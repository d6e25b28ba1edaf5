package course

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
)

//go:embed courses/*.yaml
var builtinFS embed.FS

// Builtin returns a bundled course by id
func Builtin(id string) (*Course, error) {
	data, err := builtinFS.ReadFile(path.Join("courses", id+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", id, ErrUnknownCourse)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("builtin %q: %w", id, err)
	}
	return c, nil
}

// BuiltinIDs lists bundled course ids, sorted
func BuiltinIDs() []string {
	entries, err := builtinFS.ReadDir("courses")
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			ids = append(ids, name)
		}
	}
	sort.Strings(ids)
	return ids
}

// Resolve treats ref as a file path when it exists on disk, otherwise as a built-in id
func Resolve(ref string) (*Course, error) {
	if _, err := os.Stat(ref); err == nil {
		return Load(ref)
	}
	return Builtin(ref)
}
