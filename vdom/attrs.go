package vdom

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/raskgo/raskgo/reactivity"
)

// mountedProps tracks what was actually applied to a host element so a
// later patch can diff against it without re-deriving class/style/event
// bookkeeping from scratch. scope is the disposal backbone for this
// element's DOM-level resources (event listener registrations, the ref
// callback) — distinct from a component instance's own cleanup scope,
// matching spec §4.3's separation of concerns.
type mountedProps struct {
	listeners map[string]func() // eventType -> dispose
	ref       *Ref
	scope     *reactivity.CleanupScope
}

// applyProps mounts every prop in props onto n for the first time.
func applyProps(host Host, n HNode, props Props) *mountedProps {
	mp := &mountedProps{listeners: map[string]func(){}}
	winner, _ := classKey(props)
	for key, value := range props {
		if isClassKey(key) && key != winner {
			continue
		}
		applyOneProp(host, n, key, nil, value, mp)
	}
	if ref, ok := propRef(props); ok {
		mp.ref = ref
	}
	mp.scope = buildDisposalScope(mp)
	return mp
}

// buildDisposalScope registers mp's current listeners and ref teardown as
// disposers on a fresh CleanupScope, so Unmount can tear the element down
// through the same scope-based disposal path component instances use
// (spec §4.5 "Destroy hooks"; spec §7 kind 3 — disposal never aborts
// partway on a panicking disposer).
func buildDisposalScope(mp *mountedProps) *reactivity.CleanupScope {
	scope := reactivity.NewCleanupScope(nil)
	for _, dispose := range mp.listeners {
		scope.RegisterDisposer(dispose)
	}
	if mp.ref != nil {
		ref := mp.ref
		scope.RegisterDisposer(func() { callRef(ref, nil) })
	}
	return scope
}

// patchProps diffs oldProps against newProps on an already-mounted
// element: add/update new keys, remove keys no longer present (spec
// §4.5 "Patch ... update props by diffing old vs new keys").
func patchProps(host Host, n HNode, oldProps, newProps Props, mp *mountedProps) *mountedProps {
	next := &mountedProps{listeners: map[string]func(){}}
	oldWinner, _ := classKey(oldProps)
	newWinner, _ := classKey(newProps)

	for key, oldValue := range oldProps {
		if _, stillPresent := newProps[key]; stillPresent {
			continue
		}
		if isClassKey(key) && key != oldWinner {
			continue
		}
		removeOneProp(host, n, key, oldValue, mp)
	}

	for key, newValue := range newProps {
		if isClassKey(key) && key != newWinner {
			continue
		}
		oldValue, existed := oldProps[key]
		if existed && propsEqual(oldValue, newValue) && !isEventProp(key) {
			if l, ok := mp.listeners[key]; ok {
				next.listeners[key] = l
			}
			continue
		}
		if existed {
			removeOneProp(host, n, key, oldValue, mp)
		}
		applyOneProp(host, n, key, oldValue, newValue, next)
	}

	if ref, ok := propRef(newProps); ok {
		next.ref = ref
	} else if _, hadRef := propRef(oldProps); hadRef && mp.ref != nil {
		callRef(mp.ref, nil)
	}

	next.scope = buildDisposalScope(next)
	return next
}

// propsEqual reports whether a prop value is unchanged. Values that cannot
// be compared with == (event handler funcs, style/class maps) always count
// as changed.
func propsEqual(a, b any) bool {
	if a != nil && !reflect.ValueOf(a).Comparable() {
		return false
	}
	return a == b
}

func isEventProp(key string) bool {
	return strings.HasPrefix(key, "on") && len(key) > 2
}

func eventTypeFromProp(key string) string {
	return strings.ToLower(key[2:])
}

func propRef(props Props) (*Ref, bool) {
	v, ok := props["ref"]
	if !ok {
		return nil, false
	}
	switch r := v.(type) {
	case *Ref:
		return r, true
	case RefCallback:
		return &Ref{Callback: r}, true
	case func(any):
		return &Ref{Callback: r}, true
	default:
		return nil, false
	}
}

func callRef(ref *Ref, n any) {
	if ref == nil {
		return
	}
	if ref.Callback != nil {
		ref.Callback(n)
		return
	}
	if ref.Current != nil {
		*ref.Current = n
	}
}

func applyOneProp(host Host, n HNode, key string, _ any, value any, mp *mountedProps) {
	switch {
	case key == "ref":
		return // handled by caller via propRef
	case isClassKey(key):
		host.SetAttribute(n, "class", resolveClass(value))
	case key == "style":
		applyStyle(host, n, value)
	case strings.HasPrefix(key, "data-") || strings.HasPrefix(key, "aria-"):
		if value == nil {
			host.RemoveAttribute(n, key)
			return
		}
		host.SetAttribute(n, key, toAttrString(value))
	case isEventProp(key):
		if value == nil {
			return
		}
		handler, ok := value.(func(Event))
		if !ok {
			if eh, ok2 := value.(EventHandler); ok2 {
				handler = eh
			} else {
				return
			}
		}
		eventType := eventTypeFromProp(key)
		mp.listeners[key] = host.AddEventListener(n, eventType, handler)
	default:
		if value == nil {
			host.RemoveAttribute(n, key)
			return
		}
		host.SetAttribute(n, key, toAttrString(value))
	}
}

func removeOneProp(host Host, n HNode, key string, _ any, mp *mountedProps) {
	switch {
	case key == "ref":
		return
	case isClassKey(key):
		host.RemoveAttribute(n, "class")
	case strings.HasPrefix(key, "data-") || strings.HasPrefix(key, "aria-"):
		host.RemoveAttribute(n, key)
	case key == "style":
		host.RemoveAttribute(n, "style")
	case isEventProp(key):
		if dispose, ok := mp.listeners[key]; ok {
			dispose()
			delete(mp.listeners, key)
		}
	default:
		host.RemoveAttribute(n, key)
	}
}

func isClassKey(key string) bool {
	return key == "class" || key == "className"
}

// classKey resolves which of "class"/"className" governs the class
// attribute when a props set carries both (spec §4.5: "class wins when
// both present"). Callers skip applying/removing the non-winning key
// entirely, rather than letting map iteration order decide.
func classKey(props Props) (string, bool) {
	if _, ok := props["class"]; ok {
		return "class", true
	}
	if _, ok := props["className"]; ok {
		return "className", true
	}
	return "", false
}

// resolveClass implements spec §4.5: a plain string is used as-is; a
// map[string]bool is rendered as the space-joined set of keys whose value
// is true, in sorted order for determinism.
func resolveClass(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case map[string]bool:
		names := make([]string, 0, len(v))
		for name, on := range v {
			if on {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		return strings.Join(names, " ")
	default:
		return ""
	}
}

func applyStyle(host Host, n HNode, value any) {
	m, ok := value.(map[string]string)
	if !ok {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString(":")
		b.WriteString(m[k])
		b.WriteString(";")
	}
	host.SetAttribute(n, "style", b.String())
}

func toAttrString(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return stringify(value)
}

func stringify(value any) string {
	switch v := value.(type) {
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
