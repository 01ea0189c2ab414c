package toolkit

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Groups maps a group name to the tool names it contains.
type Groups map[string][]string

type groupsFile struct {
	Groups map[string][]string `yaml:"groups"`
}

// ParseGroups reads a groups.yaml document.
func ParseGroups(data []byte) (Groups, error) {
	var f groupsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse tool groups: %w", err)
	}
	return Groups(f.Groups), nil
}

// Lookup finds a group by case-insensitive name.
func (g Groups) Lookup(name string) ([]string, bool) {
	for k, tools := range g {
		if strings.EqualFold(k, name) {
			return tools, true
		}
	}
	return nil, false
}

// Names returns the group names, sorted.
func (g Groups) Names() []string {
	names := make([]string, 0, len(g))
	for k := range g {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Validate reports group members that are not registered tools.
func (g Groups) Validate(r *Registry) error {
	var unknown []string
	for _, group := range g.Names() {
		for _, name := range g[group] {
			if _, ok := r.HandlerFor(name); !ok {
				unknown = append(unknown, group+"/"+name)
			}
		}
	}
	if len(unknown) > 0 {
		return fmt.Errorf("tool groups reference unknown tools: %s", strings.Join(unknown, ", "))
	}
	return nil
}

// Filter decides tool availability from allow and deny lists. Entries may
// name tools or groups; both match case-insensitively. With a non-empty allow
// list only listed tools are available. Deny always wins.
type Filter struct {
	allow map[string]bool
	deny  map[string]bool
}

// NewFilter expands group names in allow and deny into tool names.
func NewFilter(groups Groups, allow, deny []string) *Filter {
	return &Filter{
		allow: expand(groups, allow),
		deny:  expand(groups, deny),
	}
}

func expand(groups Groups, items []string) map[string]bool {
	out := make(map[string]bool)
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if tools, ok := groups.Lookup(item); ok {
			for _, t := range tools {
				out[strings.ToLower(t)] = true
			}
			continue
		}
		out[strings.ToLower(item)] = true
	}
	return out
}

// Allowed reports whether the named tool may be listed and called.
func (f *Filter) Allowed(name string) bool {
	if f == nil {
		return true
	}
	key := strings.ToLower(name)
	if f.deny[key] {
		return false
	}
	if len(f.allow) > 0 {
		return f.allow[key]
	}
	return true
}
