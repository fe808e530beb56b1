package vdom

// kind discriminates the mounted tree's node variants without a type
// switch on every access.
type kind int

const (
	kindText kind = iota
	kindElement
	kindFragment
	kindComponent
)

// mounted is the reconciler's live-tree record: one per vdom node
// currently attached to a Host, carrying whatever bookkeeping Patch and
// Unmount need (spec §4.5 "Mount"/"Patch"/"Destroy hooks").
type mounted struct {
	kind     kind
	node     Node
	host     HNode // set for kindText/kindElement
	props    *mountedProps
	children []*mounted // kindElement/kindFragment
	instance ComponentInstance
	rendered *mounted // kindComponent: the mounted subtree of instance.Render()
}

func nodeKey(n Node) any {
	switch t := n.(type) {
	case *Element:
		return t.Key
	case *Fragment:
		return t.Key
	case *Component:
		return t.Key
	default:
		return nil
	}
}

// Mount creates host nodes for node (and its whole subtree) and inserts
// them into parent immediately before the `before` anchor (nil meaning
// append at the end).
func Mount(host Host, parent HNode, before HNode, node Node) *mounted {
	m := build(host, parent, node)
	insertSubtree(host, parent, m, before)
	runMountedHooks(m)
	return m
}

// build constructs a mounted record and its descendants without inserting
// anything into the host tree yet. parent is the real host node this
// subtree will ultimately live under — Element introduces a new
// container for its own children, but Fragment/Component pass it through
// unchanged, since they never own a host node of their own.
func build(host Host, parent HNode, node Node) *mounted {
	switch t := node.(type) {
	case Text:
		return &mounted{kind: kindText, node: node, host: host.CreateText(t.Content)}
	case *Element:
		el := host.CreateElement(t.Tag)
		m := &mounted{kind: kindElement, node: node, host: el}
		m.props = applyProps(host, el, t.Props)
		m.children = make([]*mounted, 0, len(t.Children))
		for _, c := range t.Children {
			cm := build(host, el, c)
			insertSubtree(host, el, cm, nil)
			m.children = append(m.children, cm)
		}
		return m
	case *Fragment:
		m := &mounted{kind: kindFragment, node: node}
		m.children = make([]*mounted, 0, len(t.Children))
		for _, c := range t.Children {
			m.children = append(m.children, build(host, parent, c))
		}
		return m
	case *Component:
		inst := t.Type.Instantiate(InstanceContext{Parent: CurrentOwner()})
		inst.SetProps(t.Props)
		m := &mounted{kind: kindComponent, node: node, instance: inst}
		rendered := inst.Render()
		PushOwner(inst.Self())
		m.rendered = build(host, parent, rendered)
		PopOwner()
		inst.AttachRerender(func() {
			next := inst.Render()
			PushOwner(inst.Self())
			m.rendered = Patch(host, parent, m.rendered, next)
			PopOwner()
		})
		return m
	default:
		panic("vdom: unknown node variant")
	}
}

// insertSubtree inserts every host leaf belonging to m into parent,
// immediately before `before`, preserving internal order. Used only for
// a subtree's first-ever insertion (children of m are already inserted
// into m's own element container by build, if m is an Element).
func insertSubtree(host Host, parent HNode, m *mounted, before HNode) {
	switch m.kind {
	case kindText, kindElement:
		host.InsertBefore(parent, m.host, before)
	case kindFragment:
		for _, c := range m.children {
			insertSubtree(host, parent, c, before)
		}
	case kindComponent:
		insertSubtree(host, parent, m.rendered, before)
	}
}

// repositionBefore moves every host leaf in m's subtree to sit
// immediately before anchor, preserving internal order, and returns the
// leftmost host node actually placed (or the passed-in anchor if m's
// subtree is empty) so callers can chain calls right-to-left.
func repositionBefore(host Host, parent HNode, m *mounted, anchor HNode) HNode {
	switch m.kind {
	case kindText, kindElement:
		host.InsertBefore(parent, m.host, anchor)
		return m.host
	case kindFragment:
		for i := len(m.children) - 1; i >= 0; i-- {
			anchor = repositionBefore(host, parent, m.children[i], anchor)
		}
		return anchor
	case kindComponent:
		return repositionBefore(host, parent, m.rendered, anchor)
	default:
		return anchor
	}
}

// HostNode returns the first real host node backing m's subtree, for
// test and embedding code that needs to act on the live DOM a mounted
// tree produced without reaching into the reconciler's internals.
func HostNode(m *mounted) HNode {
	return firstHost(m)
}

func firstHost(m *mounted) HNode {
	switch m.kind {
	case kindText, kindElement:
		return m.host
	case kindFragment:
		for _, c := range m.children {
			if h := firstHost(c); h != nil {
				return h
			}
		}
		return nil
	case kindComponent:
		return firstHost(m.rendered)
	default:
		return nil
	}
}

// Patch updates the subtree rooted at m in place to represent next,
// returning the (possibly replaced) mounted record. parent/host are
// needed for the replace-variant path, which must unmount the old
// subtree and mount the new one at the same position.
func Patch(host Host, parent HNode, m *mounted, next Node) *mounted {
	if !sameVariant(m.node, next) {
		anchor := host.NextSibling(lastHost(m))
		Unmount(host, parent, m)
		return Mount(host, parent, anchor, next)
	}

	switch t := next.(type) {
	case Text:
		if t.Content != m.node.(Text).Content {
			host.SetTextContent(m.host, t.Content)
		}
		m.node = next
		return m
	case *Element:
		old := m.node.(*Element)
		if old.Tag != t.Tag {
			anchor := host.NextSibling(lastHost(m))
			Unmount(host, parent, m)
			return Mount(host, parent, anchor, next)
		}
		m.props = patchProps(host, m.host, old.Props, t.Props, m.props)
		m.children = reconcileChildren(host, m.host, m.children, t.Children)
		m.node = next
		return m
	case *Fragment:
		m.children = reconcileChildren(host, parent, m.children, t.Children)
		m.node = next
		return m
	case *Component:
		old := m.node.(*Component)
		m.node = next
		if old.Type != t.Type {
			anchor := host.NextSibling(lastHost(m))
			Unmount(host, parent, m)
			return Mount(host, parent, anchor, next)
		}
		if m.instance.SetProps(t.Props) {
			next := m.instance.Render()
			PushOwner(m.instance.Self())
			m.rendered = Patch(host, parent, m.rendered, next)
			PopOwner()
		}
		return m
	default:
		panic("vdom: unknown node variant")
	}
}

func lastHost(m *mounted) HNode {
	switch m.kind {
	case kindText, kindElement:
		return m.host
	case kindFragment:
		for i := len(m.children) - 1; i >= 0; i-- {
			if h := lastHost(m.children[i]); h != nil {
				return h
			}
		}
		return nil
	case kindComponent:
		return lastHost(m.rendered)
	default:
		return nil
	}
}

func sameVariant(a, b Node) bool {
	switch a.(type) {
	case Text:
		_, ok := b.(Text)
		return ok
	case *Element:
		_, ok := b.(*Element)
		return ok
	case *Fragment:
		_, ok := b.(*Fragment)
		return ok
	case *Component:
		_, ok := b.(*Component)
		return ok
	default:
		return false
	}
}

// Unmount removes m's host nodes from parent and runs its destroy hooks:
// components run their cleanup lists and dispose observers; elements
// remove their remaining event listeners (spec §4.5 "Destroy hooks").
func Unmount(host Host, parent HNode, m *mounted) {
	switch m.kind {
	case kindText:
		host.RemoveChild(parent, m.host)
	case kindElement:
		for _, c := range m.children {
			unmountChild(host, m.host, c)
		}
		m.props.scope.Dispose()
		host.RemoveChild(parent, m.host)
	case kindFragment:
		for _, c := range m.children {
			unmountChild(host, parent, c)
		}
	case kindComponent:
		unmountChild(host, parent, m.rendered)
		m.instance.Destroy()
	}
}

// unmountChild is Unmount without requiring the caller to already know
// which physical parent a nested fragment/component child's host nodes
// live under — it is always the same `parent` passed down, since
// fragments/components never introduce their own container node.
func unmountChild(host Host, parent HNode, m *mounted) {
	Unmount(host, parent, m)
}

func runMountedHooks(m *mounted) {
	switch m.kind {
	case kindElement:
		if m.props.ref != nil {
			callRef(m.props.ref, m.host)
		}
		for _, c := range m.children {
			runMountedHooks(c)
		}
	case kindFragment:
		for _, c := range m.children {
			runMountedHooks(c)
		}
	case kindComponent:
		runMountedHooks(m.rendered)
		m.instance.Mounted()
	}
}
