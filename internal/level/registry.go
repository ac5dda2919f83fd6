package level

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

//go:embed levels/*.yaml
var builtinFS embed.FS

// Info contains metadata about a registered level.
type Info struct {
	ID      string
	Name    string
	Suitors int
	Endless bool
}

var (
	levels = make(map[string]Level)
	mu     sync.RWMutex
)

func init() {
	entries, err := fs.ReadDir(builtinFS, "levels")
	if err != nil {
		panic(fmt.Sprintf("level: reading built-in levels: %v", err))
	}
	for _, e := range entries {
		data, err := builtinFS.ReadFile("levels/" + e.Name())
		if err != nil {
			panic(fmt.Sprintf("level: reading %s: %v", e.Name(), err))
		}
		lvl, err := Parse(data)
		if err != nil {
			panic(fmt.Sprintf("level: built-in %s: %v", e.Name(), err))
		}
		Register(lvl)
	}
}

// Register adds a level to the registry.
// Panics if a level with the same ID is already registered.
func Register(l Level) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := levels[l.ID]; exists {
		panic(fmt.Sprintf("level: %q already registered", l.ID))
	}
	levels[l.ID] = l
}

// List returns information about all registered levels, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(levels))
	for _, l := range levels {
		result = append(result, Info{ID: l.ID, Name: l.Name, Suitors: l.Suitors, Endless: l.Endless})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a registered level by ID.
func Get(id string) (Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := levels[id]
	if !ok {
		return Level{}, fmt.Errorf("%w %q", ErrUnknownLevel, id)
	}
	return l, nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := levels[id]
	return ok
}

// LoadFile reads a single level file from disk.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	lvl.FilePath = path
	return lvl, nil
}

// LoadDir loads every .yaml/.yml level under root, sorted by ID.
// Unparseable files are skipped.
func LoadDir(root string) ([]Level, error) {
	var out []Level

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}

		lvl, err := LoadFile(path)
		if err != nil {
			return nil
		}
		out = append(out, lvl)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", root, err)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}
