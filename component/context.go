package component

// getContext walks the instance chain: this instance's own map first,
// else delegate to its parent (spec §4.4 "Lookup walks up: current map
// first, else delegate to parent; miss signals an error").
func (inst *Instance) getContext(id any) (any, bool) {
	if v, ok := inst.contextMap[id]; ok {
		return v, true
	}
	if inst.parent != nil {
		return inst.parent.getContext(id)
	}
	return nil, false
}

// inject writes into the current instance's context map. Only meaningful
// during setup (spec §4.4 "inject(id, value) writes into the current
// instance's map during setup only").
func (inst *Instance) inject(id, value any) {
	inst.contextMap[id] = value
}
