// Package component implements class-like component instances driven by
// the reactivity engine: a setup function runs once to register mount
// and cleanup callbacks and capture a render closure over a reactive
// props proxy; re-renders are triggered only when the render observer's
// tracked dependencies change (spec §2 "component reconciliation
// layer", §4.3).
package component
