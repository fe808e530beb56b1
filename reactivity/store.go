package reactivity

import (
	"fmt"
	"reflect"
)

// Store is the secondary, statically-typed reactive container for Go
// structs. Unlike Proxy/CreateState, Store builds its tree by reflecting
// over T once at construction and keeps a parallel tree of per-field/
// per-index signals; Get() returns a snapshot (whose leaf reads are still
// tracked inside an Observer) while Select yields a Signal for one nested
// path.
//
// Store does not preserve reference identity of nested elements across
// structural operations (e.g. filtering a slice of structs produces new
// storeNodes with fresh signals, since Go struct values carry no
// identity of their own) — use Proxy when that invariant matters.
// Select path rules: strings address struct fields by name, ints address
// slice/array indices, e.g. Select("Todos", 0, "Completed").
type Store[T any] interface {
	// Get returns a snapshot of the entire state (non-reactive read of
	// the tree shape; individual leaves are still tracked if read from
	// inside an Observer, since Get delegates to each leaf's Signal.Get).
	Get() T
	// Select returns a Signal[any] for the nested property addressed by
	// path. Use Adapt[V] to cast it to a typed signal.
	Select(path ...any) Signal[any]
	// SelectLen returns a Signal[int] for the length of the slice/array
	// at path.
	SelectLen(path ...any) Signal[int]
}

type store[T any] struct {
	root *storeNode
	typ  reflect.Type
}

type storeNode struct {
	typ    reflect.Type
	leaf   Signal[any]
	fields map[string]*storeNode
	elems  []*storeNode
	slen   Signal[int]
}

// CreateStore builds a reactive store from initialState. It returns the
// store plus a setState function taking a path (strings for fields, ints
// for indices) followed by the new value as the final argument:
//
//	setState("Todos", 0, "Completed", true)
//
// Calling setState with a single argument replaces the entire root.
func CreateStore[T any](initialState T) (Store[T], func(...any)) {
	val := reflect.ValueOf(initialState)
	typ := reflect.TypeOf(initialState)
	root := buildStoreNode(val)
	st := &store[T]{root: root, typ: typ}

	setter := func(args ...any) {
		if len(args) == 0 {
			panic("reactivity: setState requires at least a value")
		}
		newVal := args[len(args)-1]
		path := args[:len(args)-1]
		if len(path) == 0 {
			st.assignNodeValue(st.root, reflect.ValueOf(newVal))
			return
		}
		n := st.root
		for i, p := range path {
			switch key := p.(type) {
			case string:
				if n.fields == nil {
					panic(fmt.Sprintf("reactivity: setState segment %d (%q) is not a struct field", i, key))
				}
				nn, ok := n.fields[key]
				if !ok {
					nn = buildStoreNode(reflect.ValueOf(newVal))
					n.fields[key] = nn
				}
				n = nn
			case int:
				if n.elems == nil {
					panic(fmt.Sprintf("reactivity: setState segment %d (%d) is not a slice/array", i, key))
				}
				if key < 0 {
					panic("reactivity: negative index in setState path")
				}
				for len(n.elems) <= key {
					n.elems = append(n.elems, buildStoreNode(zeroElem(n.typ)))
				}
				if n.slen != nil {
					n.slen.Set(len(n.elems))
				}
				n = n.elems[key]
			default:
				panic(fmt.Sprintf("reactivity: unsupported setState path segment type %T", p))
			}
		}
		st.assignNodeValue(n, reflect.ValueOf(newVal))
	}

	return st, setter
}

func zeroElem(sliceType reflect.Type) reflect.Value {
	if sliceType != nil && (sliceType.Kind() == reflect.Slice || sliceType.Kind() == reflect.Array) {
		return reflect.Zero(sliceType.Elem())
	}
	return reflect.Value{}
}

func buildStoreNode(v reflect.Value) *storeNode {
	for v.IsValid() && v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return &storeNode{leaf: CreateSignal[any](nil)}
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		return &storeNode{leaf: CreateSignal[any](nil)}
	}
	t := v.Type()
	switch v.Kind() {
	case reflect.Struct:
		n := &storeNode{typ: t, fields: make(map[string]*storeNode)}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" {
				continue
			}
			n.fields[f.Name] = buildStoreNode(v.Field(i))
		}
		return n
	case reflect.Slice, reflect.Array:
		l := v.Len()
		elems := make([]*storeNode, l)
		for i := 0; i < l; i++ {
			elems[i] = buildStoreNode(v.Index(i))
		}
		return &storeNode{typ: t, elems: elems, slen: CreateSignal(l)}
	default:
		return &storeNode{typ: t, leaf: CreateSignal(any(v.Interface()))}
	}
}

func (s *store[T]) assignNodeValue(n *storeNode, val reflect.Value) {
	for val.IsValid() && val.Kind() == reflect.Ptr {
		if val.IsNil() {
			if n.leaf == nil {
				n.leaf = CreateSignal[any](nil)
			} else {
				n.leaf.Set(nil)
			}
			return
		}
		val = val.Elem()
	}
	if !val.IsValid() {
		if n.leaf == nil {
			n.leaf = CreateSignal[any](nil)
		} else {
			n.leaf.Set(nil)
		}
		return
	}
	switch val.Kind() {
	case reflect.Struct:
		if n.fields == nil {
			n.fields = make(map[string]*storeNode)
			n.leaf = nil
			n.elems = nil
		}
		n.typ = val.Type()
		t := val.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" {
				continue
			}
			fv := val.Field(i)
			child, ok := n.fields[f.Name]
			if !ok {
				n.fields[f.Name] = buildStoreNode(fv)
				continue
			}
			s.assignNodeValue(child, fv)
		}
	case reflect.Slice, reflect.Array:
		l := val.Len()
		if n.elems == nil {
			n.elems = make([]*storeNode, 0, l)
			n.fields = nil
			n.leaf = nil
		}
		n.typ = val.Type()
		if len(n.elems) > l {
			n.elems = n.elems[:l]
		}
		for i := 0; i < l; i++ {
			if i < len(n.elems) && n.elems[i] != nil {
				s.assignNodeValue(n.elems[i], val.Index(i))
				continue
			}
			n.elems = append(n.elems, buildStoreNode(val.Index(i)))
		}
		if n.slen == nil {
			n.slen = CreateSignal(l)
		} else {
			n.slen.Set(l)
		}
	default:
		if n.leaf == nil {
			n.leaf = CreateSignal(any(val.Interface()))
			return
		}
		n.leaf.Set(any(val.Interface()))
	}
}

func (s *store[T]) Get() T {
	out := reflect.New(s.typ)
	buildStoreSnapshot(s.root, out.Elem())
	return out.Elem().Interface().(T)
}

func buildStoreSnapshot(n *storeNode, dst reflect.Value) {
	switch dst.Kind() {
	case reflect.Struct:
		for i := 0; i < dst.NumField(); i++ {
			f := dst.Type().Field(i)
			if f.PkgPath != "" {
				continue
			}
			child := n.fields[f.Name]
			if child == nil {
				continue
			}
			buildStoreSnapshot(child, dst.Field(i))
		}
	case reflect.Slice:
		l := len(n.elems)
		dst.Set(reflect.MakeSlice(dst.Type(), l, l))
		for i := 0; i < l; i++ {
			buildStoreSnapshot(n.elems[i], dst.Index(i))
		}
	default:
		if n.leaf == nil {
			return
		}
		v := n.leaf.Get()
		if v == nil {
			return
		}
		rv := reflect.ValueOf(v)
		if rv.Type().AssignableTo(dst.Type()) {
			dst.Set(rv)
			return
		}
		if rv.Type().ConvertibleTo(dst.Type()) {
			dst.Set(rv.Convert(dst.Type()))
		}
	}
}

func (s *store[T]) Select(path ...any) Signal[any] {
	n := s.root
	for i, p := range path {
		switch key := p.(type) {
		case string:
			if n.fields == nil {
				panic(fmt.Sprintf("reactivity: Select segment %d (%q) is not a struct field", i, key))
			}
			nn := n.fields[key]
			if nn == nil {
				if n.typ != nil && n.typ.Kind() == reflect.Struct {
					if f, ok := n.typ.FieldByName(key); ok && f.PkgPath == "" {
						nn = buildStoreNode(reflect.Zero(f.Type))
					}
				}
				if nn == nil {
					nn = &storeNode{leaf: CreateSignal[any](nil)}
				}
				n.fields[key] = nn
			}
			n = nn
		case int:
			if n.elems == nil {
				panic(fmt.Sprintf("reactivity: Select segment %d (%d) is not a slice/array", i, key))
			}
			if key < 0 {
				panic("reactivity: Select negative index")
			}
			for len(n.elems) <= key {
				n.elems = append(n.elems, buildStoreNode(zeroElem(n.typ)))
			}
			if n.slen != nil {
				n.slen.Set(len(n.elems))
			}
			n = n.elems[key]
		default:
			panic(fmt.Sprintf("reactivity: unsupported Select path segment type %T", p))
		}
	}
	if n.leaf == nil {
		return CreateMemo(func() any {
			if n.typ == nil {
				return nil
			}
			dst := reflect.New(n.typ).Elem()
			buildStoreSnapshot(n, dst)
			return dst.Interface()
		})
	}
	return n.leaf
}

func (s *store[T]) SelectLen(path ...any) Signal[int] {
	n := s.root
	for i, p := range path {
		switch key := p.(type) {
		case string:
			if n.fields == nil {
				panic(fmt.Sprintf("reactivity: SelectLen segment %d (%q) is not a struct field", i, key))
			}
			nn := n.fields[key]
			if nn == nil {
				nn = &storeNode{slen: CreateSignal(0)}
				n.fields[key] = nn
			}
			n = nn
		case int:
			if n.elems == nil {
				panic(fmt.Sprintf("reactivity: SelectLen segment %d (%d) is not a slice/array", i, key))
			}
			n = n.elems[key]
		default:
			panic(fmt.Sprintf("reactivity: unsupported SelectLen path segment type %T", p))
		}
	}
	if n.slen == nil {
		n.slen = CreateSignal(len(n.elems))
	}
	return n.slen
}

// adapter narrows a Signal[any] to a typed Signal[V], for use with
// Store.Select results.
type adapter[V any] struct {
	inner Signal[any]
}

// Adapt converts a generic any-based signal to a typed one.
func Adapt[V any](s Signal[any]) Signal[V] { return &adapter[V]{inner: s} }

func (a *adapter[V]) Get() V {
	v := a.inner.Get()
	if v == nil {
		var zero V
		return zero
	}
	if vv, ok := v.(V); ok {
		return vv
	}
	rv := reflect.ValueOf(v)
	rt := reflect.TypeOf((*V)(nil)).Elem()
	if rv.IsValid() && rv.Type().ConvertibleTo(rt) {
		return rv.Convert(rt).Interface().(V)
	}
	var zero V
	return zero
}

func (a *adapter[V]) Set(v V) { a.inner.Set(any(v)) }
