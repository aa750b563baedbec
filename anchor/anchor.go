// Package anchor defines the position capability a connection point is
// realized through: either a static position in the connection's own
// coordinate space, or a delegation to an external target the point is
// attached to.
package anchor

import "elbow/geometry"

// Target is an external element a dynamic anchor delegates its position to.
// AnchorPosition resolves the attachment position in scene space for the
// given reference point (typically by projecting it onto the element's
// outline). Implementations must be comparable; anchors use target identity
// to decide whether two points are anchored to the same element.
type Target interface {
	AnchorPosition(ref geometry.Point) geometry.Point
}

// Kind discriminates the two anchor variants.
type Kind int

const (
	// KindStatic anchors carry an immutable reference position local to the
	// connection.
	KindStatic Kind = iota
	// KindDynamic anchors delegate their position to a Target.
	KindDynamic
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindStatic:
		return "static"
	case KindDynamic:
		return "dynamic"
	default:
		return "unknown"
	}
}

// Anchor realizes one connection point as a closed tagged variant. The zero
// value is an explicit static anchor at the origin.
type Anchor struct {
	kind           Kind
	ref            geometry.Point
	target         Target
	routerInserted bool
}

// Static returns an explicit unconnected anchor at the given local position.
func Static(p geometry.Point) Anchor {
	return Anchor{kind: KindStatic, ref: p}
}

// RouterInserted returns a static anchor marked as contributed by a router.
// Routers may drop these again on a later pass; explicit anchors they may
// not touch.
func RouterInserted(p geometry.Point) Anchor {
	return Anchor{kind: KindStatic, ref: p, routerInserted: true}
}

// Dynamic returns an anchor attached to target, keeping ref (scene space) as
// the attachment reference the target resolves against. The target must not
// be nil.
func Dynamic(target Target, ref geometry.Point) Anchor {
	return Anchor{kind: KindDynamic, ref: ref, target: target}
}

// Kind returns the anchor's variant tag.
func (a Anchor) Kind() Kind {
	return a.kind
}

// Reference returns the stored reference position: the local-space position
// for static anchors, the scene-space attachment reference for dynamic ones.
func (a Anchor) Reference() geometry.Point {
	return a.ref
}

// Target returns the attachment target, nil for static anchors.
func (a Anchor) Target() Target {
	return a.target
}

// IsRouterInserted reports whether a router contributed this anchor.
func (a Anchor) IsRouterInserted() bool {
	return a.routerInserted
}

// IsExplicitStatic reports whether the anchor is a user-placed static point,
// i.e. statically resolvable and not owned by a router.
func (a Anchor) IsExplicitStatic() bool {
	return a.kind == KindStatic && !a.routerInserted
}

// Position resolves the anchor's current position: the stored reference for
// static anchors, the target's answer for dynamic ones. Dynamic positions
// are resolved anew on every call, never cached.
func (a Anchor) Position() geometry.Point {
	if a.kind == KindDynamic {
		return a.target.AnchorPosition(a.ref)
	}
	return a.ref
}

// SameTarget implements the overlay identity rule: two points merge only if
// they would be anchored identically. Static anchors are targetless and all
// compare equal to one another; dynamic anchors compare by target identity.
func (a Anchor) SameTarget(b Anchor) bool {
	return a.target == b.target
}

// Equal reports value equality: same variant, same router flag, same target
// identity and coinciding reference positions. The bend operation's no-op
// detection is built on this, so a point moved back to its exact initial
// position counts as unchanged.
func (a Anchor) Equal(b Anchor) bool {
	if a.kind != b.kind || a.routerInserted != b.routerInserted {
		return false
	}
	if a.target != b.target {
		return false
	}
	return a.ref.Eq(b.ref)
}
