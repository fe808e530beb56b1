package reactivity

// Derived is the spec's "derived table": a mapping of name to pure
// compute function, each memoised independently behind its own lazy
// Derived entry (spec §3/§4.1). Entries may read other entries of the
// same table (or any other signal); cycles are the caller's
// responsibility (spec §9 open question).
type Derived interface {
	// Get returns the current value of the named entry, computing it if
	// dirty. Panics if name was not part of the table passed to
	// CreateDerived — an invariant violation (spec §7 kind 4), since the
	// table's key set is fixed at construction.
	Get(name string) any
}

type derivedTable struct {
	entries map[string]Signal[any]
}

// CreateDerived builds a Derived table from a map of name to pure compute
// function. Each entry's compute function runs with this Derived value in
// scope via closures the caller writes directly, e.g.:
//
//	d := CreateDerived(map[string]func() any{
//	    "double": func() any { return state.Get("count").(int) * 2 },
//	})
func CreateDerived(table map[string]func() any) Derived {
	entries := make(map[string]Signal[any], len(table))
	for name, compute := range table {
		entries[name] = CreateMemo(compute)
	}
	return &derivedTable{entries: entries}
}

func (d *derivedTable) Get(name string) any {
	entry, ok := d.entries[name]
	if !ok {
		panic("reactivity: no such derived entry " + name)
	}
	return entry.Get()
}
