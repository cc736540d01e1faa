// Package agent implements the investigation runtime: a planner that
// selects the next tool, an executor that runs it under deadline, and a
// graph runner that loops the two until completion, snapshotting state
// after every node. The tool set is closed and dispatched through a
// registry keyed by name.
package agent

import (
	"sort"

	"github.com/fraudops/opsagent/pkg/agent/tools"
)

// Registry maps tool names to tool values. Built once at startup,
// read-only afterwards.
type Registry struct {
	byName map[string]tools.Tool
}

// NewRegistry creates a registry over the given tools.
func NewRegistry(toolSet ...tools.Tool) *Registry {
	byName := make(map[string]tools.Tool, len(toolSet))
	for _, t := range toolSet {
		byName[t.Name()] = t
	}
	return &Registry{byName: byName}
}

// Get resolves a tool by name.
func (r *Registry) Get(name string) (tools.Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
