package reactivity

import (
	"reflect"
	"weak"
)

// proxyIdentity is a registry mapping the identity of an underlying
// object/array to its already-allocated Proxy, held weakly so it never
// keeps data alive past the last real reference (spec §3 "weak cache
// mapping the underlying object to its proxy", §5 "Proxy caches are
// weak-keyed on the underlying object to preserve identity without
// leaking").
var proxyIdentity = map[uintptr]weak.Pointer[Proxy]{}

// identityOf returns a stable address-derived key for a reference-typed
// Go value (map or slice), or ok=false for values with no address
// identity worth caching on.
func identityOf(v any) (uintptr, bool) {
	switch t := v.(type) {
	case map[string]any:
		if t == nil {
			return 0, false
		}
		return mapIdentity(t), true
	case []any:
		if t == nil || len(t) == 0 {
			return 0, false
		}
		return sliceIdentity(t), true
	default:
		return 0, false
	}
}

func mapIdentity(m map[string]any) uintptr {
	return reflect.ValueOf(m).Pointer()
}

func sliceIdentity(s []any) uintptr {
	return reflect.ValueOf(s).Pointer()
}

// getOrCreateProxy returns the cached proxy for id if it is still alive,
// else builds one with create and caches it.
func getOrCreateProxy(id uintptr, create func() *Proxy) *Proxy {
	if wp, ok := proxyIdentity[id]; ok {
		if p := wp.Value(); p != nil {
			return p
		}
	}
	p := create()
	proxyIdentity[id] = weak.Make(p)
	return p
}
