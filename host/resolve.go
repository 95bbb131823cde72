package host

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrModuleNotFound reports a module path no search root could satisfy.
var ErrModuleNotFound = errors.New("module not found")

// ResolveModulePath maps a dotted module path ("game.entities.player") to a
// file path under the first search root that holds it. Each dot becomes a
// path separator; both "player.lua" and "player/init.lua" layouts are
// accepted, in that order, per root.
func ResolveModulePath(module string, roots []string) (string, error) {
	if module == "" {
		return "", fmt.Errorf("empty module path")
	}
	if strings.ContainsAny(module, `/\`) {
		return "", fmt.Errorf("module path %q must be dotted, not slashed", module)
	}

	rel := filepath.Join(strings.Split(module, ".")...)
	for _, root := range roots {
		if root == "" {
			continue
		}
		for _, candidate := range []string{
			filepath.Join(root, rel+".lua"),
			filepath.Join(root, rel, "init.lua"),
		} {
			info, err := os.Stat(candidate)
			if err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s (searched %d roots)", ErrModuleNotFound, module, len(roots))
}
