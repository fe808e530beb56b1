package component

import "reflect"

// Reserved prop keys that bypass reactivity entirely when read through
// Props (spec §4.3 "reading special keys ... bypasses reactivity").
const (
	RefPropKey      = "ref"
	IdentityPropKey = "__component__"
)

// Props is the read-only reactive props proxy handed to a component's
// setup function. Reading a key inside an Observer subscribes to a
// lazily allocated per-key signal that fires during prop reception
// (spec §4.3 "Reactive props proxy").
type Props struct {
	inst *Instance
}

// Get returns the current value of key, subscribing the active Observer
// (if any) to future changes of that key.
func (p *Props) Get(key string) any {
	if key == RefPropKey || key == IdentityPropKey {
		return p.inst.props[key]
	}
	p.inst.signalFor(key).Get()
	return p.inst.props[key]
}

// Has reports whether key is currently present, without subscribing.
func (p *Props) Has(key string) bool {
	_, ok := p.inst.props[key]
	return ok
}

// Keys returns the current prop key set, without subscribing to any of
// them — mirrors the underlying props' ownKeys (spec §4.3).
func (p *Props) Keys() []string {
	keys := make([]string, 0, len(p.inst.props))
	for k := range p.inst.props {
		keys = append(keys, k)
	}
	return keys
}

func valuesEqual(a, b any) bool {
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if av.IsValid() && bv.IsValid() && av.Kind() == bv.Kind() {
		switch av.Kind() {
		case reflect.Ptr, reflect.Chan, reflect.UnsafePointer:
			return a == b
		}
	}
	return reflect.DeepEqual(a, b)
}
