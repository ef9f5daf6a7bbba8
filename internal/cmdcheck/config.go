// internal/cmdcheck/config.go
package cmdcheck

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Command is one executable to validate: an optional nickname plus the
// command string probed against PATH.
type Command struct {
	Name string
	Cmd  string
}

// LoadConfig reads a tool config mapping section names to commands.
// A section body may be a mapping (nickname -> command), a list of bare
// command strings, or a single command string. Format follows the file
// extension: .toml is TOML, everything else YAML.
func LoadConfig(path string) (map[string][]Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	out := make(map[string][]Command, len(raw))
	for section, body := range raw {
		cmds, err := sectionCommands(body)
		if err != nil {
			return nil, fmt.Errorf("%s: section %q: %w", path, section, err)
		}
		out[section] = cmds
	}
	return out, nil
}

func sectionCommands(body any) ([]Command, error) {
	switch b := body.(type) {
	case map[string]any:
		names := make([]string, 0, len(b))
		for name := range b {
			names = append(names, name)
		}
		sort.Strings(names)
		cmds := make([]Command, 0, len(names))
		for _, name := range names {
			cmds = append(cmds, Command{Name: name, Cmd: fmt.Sprint(b[name])})
		}
		return cmds, nil
	case []any:
		cmds := make([]Command, 0, len(b))
		for _, item := range b {
			cmds = append(cmds, Command{Cmd: fmt.Sprint(item)})
		}
		return cmds, nil
	case string:
		return []Command{{Cmd: b}}, nil
	case nil:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported section body type %T", body)
	}
}
