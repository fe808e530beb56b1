package vdom

// reconcileChildren diffs old against newNodes under parent. If any
// sibling on either side carries a key, keyed reconciliation runs:
// every child whose key is present on both sides keeps its underlying
// host node, moved rather than recreated (spec §4.5 "Keyed children
// reconciliation"). Otherwise children are reused positionally and only
// the tail grows or shrinks (spec's unkeyed behavior).
func reconcileChildren(host Host, parent HNode, old []*mounted, newNodes []Node) []*mounted {
	if anyKeyed(old, newNodes) {
		return reconcileKeyed(host, parent, old, newNodes)
	}
	return reconcileUnkeyed(host, parent, old, newNodes)
}

func anyKeyed(old []*mounted, newNodes []Node) bool {
	for _, m := range old {
		if nodeKey(m.node) != nil {
			return true
		}
	}
	for _, n := range newNodes {
		if nodeKey(n) != nil {
			return true
		}
	}
	return false
}

func reconcileUnkeyed(host Host, parent HNode, old []*mounted, newNodes []Node) []*mounted {
	result := make([]*mounted, len(newNodes))
	n := len(old)
	if len(newNodes) < n {
		n = len(newNodes)
	}
	for i := 0; i < n; i++ {
		result[i] = Patch(host, parent, old[i], newNodes[i])
	}
	for i := n; i < len(old); i++ {
		Unmount(host, parent, old[i])
	}
	for i := n; i < len(newNodes); i++ {
		result[i] = Mount(host, parent, nil, newNodes[i])
	}
	return result
}

func reconcileKeyed(host Host, parent HNode, old []*mounted, newNodes []Node) []*mounted {
	oldKeyIdx := make(map[any]int, len(old))
	for i, m := range old {
		if k := nodeKey(m.node); k != nil {
			oldKeyIdx[k] = i
		}
	}

	used := make([]bool, len(old))
	result := make([]*mounted, len(newNodes))
	for i, nn := range newNodes {
		if k := nodeKey(nn); k != nil {
			if oi, ok := oldKeyIdx[k]; ok {
				result[i] = Patch(host, parent, old[oi], nn)
				used[oi] = true
				continue
			}
		}
		result[i] = Mount(host, parent, nil, nn)
	}

	for i, m := range old {
		if !used[i] {
			Unmount(host, parent, m)
		}
	}

	anchor := HNode(nil)
	for i := len(result) - 1; i >= 0; i-- {
		anchor = repositionBefore(host, parent, result[i], anchor)
	}

	return result
}
