package dispatchers

import (
	"fmt"
	"sort"

	"github.com/footprint-tools/consoleapp/internal/domain"
	"github.com/footprint-tools/consoleapp/internal/log"
)

// Registry holds every namespace the host program registered (the catalog)
// and the subset made active by the last Load.
//
// The flat name set is the union of command names across the active
// namespaces. It is namespace-unaware: Has answers whether a name exists
// anywhere, not whether it exists in a particular namespace.
type Registry struct {
	catalog map[string]map[string]CommandSpec

	namespaces []string
	active     map[string]map[string]CommandSpec
	names      map[string]struct{}

	logger domain.Logger
}

// NewRegistry creates an empty registry. A nil logger discards messages.
func NewRegistry(logger domain.Logger) *Registry {
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Registry{
		catalog: make(map[string]map[string]CommandSpec),
		active:  make(map[string]map[string]CommandSpec),
		names:   make(map[string]struct{}),
		logger:  logger,
	}
}

// Register adds commands to the catalog under namespace. It panics if a
// command has no name or handler, or is already registered in namespace.
// Registered commands become visible on the next Load.
func (r *Registry) Register(namespace string, cmds ...CommandSpec) {
	set, ok := r.catalog[namespace]
	if !ok {
		set = make(map[string]CommandSpec)
		r.catalog[namespace] = set
	}

	for _, cmd := range cmds {
		if cmd.Name == "" || cmd.Handler == nil {
			panic(fmt.Sprintf("command %q in namespace %s needs a name and a handler", cmd.Name, namespace))
		}
		if _, exists := set[cmd.Name]; exists {
			panic(fmt.Sprintf("command %s already registered in namespace %s", cmd.Name, namespace))
		}
		set[cmd.Name] = cmd
	}
}

// Load clears the active state and activates namespaces in the given order.
// Namespaces missing from the catalog are skipped without error.
func (r *Registry) Load(namespaces []string) {
	r.namespaces = append([]string(nil), namespaces...)
	r.active = make(map[string]map[string]CommandSpec)
	r.names = make(map[string]struct{})

	for _, ns := range r.namespaces {
		set, ok := r.catalog[ns]
		if !ok {
			r.logger.Debug("registry: namespace %q not registered, skipping", ns)
			continue
		}

		snapshot := make(map[string]CommandSpec, len(set))
		for name, cmd := range set {
			snapshot[name] = cmd
			r.names[name] = struct{}{}
		}
		r.active[ns] = snapshot
	}

	r.logger.Debug("registry: loaded %d namespaces, %d command names", len(r.active), len(r.names))
}

// Namespaces returns the configured namespaces in dispatch order, including
// ones that were skipped by Load.
func (r *Registry) Namespaces() []string {
	return append([]string(nil), r.namespaces...)
}

// Has reports whether name is exposed by any active namespace.
func (r *Registry) Has(name string) bool {
	_, ok := r.names[name]
	return ok
}

// Commands returns the flat command name set, sorted.
func (r *Registry) Commands() []string {
	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the command registered as name in an active namespace.
func (r *Registry) Lookup(namespace, name string) (CommandSpec, bool) {
	set, ok := r.active[namespace]
	if !ok {
		return CommandSpec{}, false
	}
	cmd, ok := set[name]
	return cmd, ok
}

// NamespaceCommands returns the commands of an active namespace sorted by name.
func (r *Registry) NamespaceCommands(namespace string) []CommandSpec {
	set := r.active[namespace]
	cmds := make([]CommandSpec, 0, len(set))
	for _, cmd := range set {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name < cmds[j].Name
	})
	return cmds
}
