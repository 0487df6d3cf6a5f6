package install

// Entry pairs an installer name with its enabled flag.
type Entry struct {
	Name    string
	Enabled bool
}

// Registry is an ordered set of installers. First-insertion order is
// preserved and determines run and output ordering.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// NewRegistry returns a registry seeded with the given entries, in order.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		r.Set(e.Name, e.Enabled)
	}
	return r
}

// Set records an installer flag. A repeated name keeps its original position
// and takes the new flag.
func (r *Registry) Set(name string, enabled bool) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[name]; ok {
		r.entries[i].Enabled = enabled
		return
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, Entry{Name: name, Enabled: enabled})
}

// DisableAll marks every registered installer as skipped.
func (r *Registry) DisableAll() {
	for i := range r.entries {
		r.entries[i].Enabled = false
	}
}

// Len returns the number of registered installers.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Partition holds the outcome of one partition pass: the commands to run and
// the commands skipped. Together they contain every registered name exactly
// once, in registration order.
type Partition struct {
	Commands []string
	Skipped  []string
}

// Partition splits the registry into run and skip lists. An installer whose
// flag is false is always classified as skipped, never omitted.
func (r *Registry) Partition() Partition {
	var p Partition
	for _, e := range r.entries {
		if e.Enabled {
			p.Commands = append(p.Commands, e.Name)
		} else {
			p.Skipped = append(p.Skipped, e.Name)
		}
	}
	return p
}
