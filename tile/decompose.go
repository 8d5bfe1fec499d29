// SPDX-License-Identifier: MIT
package tile

import (
	"github.com/katalvlaran/penrose/geom"
	"github.com/katalvlaran/penrose/numfield"
)

// Rule IDs accepted by Decompose.
const (
	RuleToA           = "to-A"
	RuleToB           = "to-B"
	RuleToP2          = "to-P2"
	RuleToP3          = "to-P3"
	RuleHalfDeflation = "half-deflation"
	RuleDeflation     = "deflation"
)

// RuleIDs lists every substitution rule ID Decompose recognizes.
func RuleIDs() []string {
	return []string{RuleToA, RuleToB, RuleToP2, RuleToP3, RuleHalfDeflation, RuleDeflation}
}

// toAChildren maps a P2 class name to its two Robinson-A halves. The
// halves' proto-vertices are subsets of the parent's in the same frame,
// so each child reuses the parent's transform unchanged.
var toAChildren = map[string][2]string{
	"Kite": {"A_K1", "A_K2"},
	"Dart": {"A_D1", "A_D2"},
}

// toBChildren maps a P3 class name to its two Robinson-B halves.
var toBChildren = map[string][2]string{
	"ThickRhomb": {"B_L1", "B_L2"},
	"ThinRhomb":  {"B_S1", "B_S2"},
}

// toP2Parent maps a Robinson-A class name to its P2 parent.
var toP2Parent = map[string]string{
	"A_K1": "Kite", "A_K2": "Kite",
	"A_D1": "Dart", "A_D2": "Dart",
}

// toP3Parent maps a Robinson-B class name to its P3 parent.
var toP3Parent = map[string]string{
	"B_L1": "ThickRhomb", "B_L2": "ThickRhomb",
	"B_S1": "ThinRhomb", "B_S2": "ThinRhomb",
}

// childSpec places one half-deflation child: the child's class, and the
// local similarity (rotation by rot*18 degrees, uniform scaling by
// invPhi when shrink is set, then translation to anchor) mapping the
// child's proto frame into the parent's proto frame.
type childSpec struct {
	class  string
	anchor geom.Point
	rot    int
	shrink bool
}

// halfDeflation is the Robinson-triangle substitution table. Each
// triangle maps to one or two triangles of the complementary tile set:
//
//   - An acute A-triangle (half-kite) splits along the cevian from its
//     far base corner to the golden point of its second leg into an
//     obtuse and an acute B-triangle, both scaled by 1/phi.
//   - An obtuse A-triangle (half-dart) is congruent to an obtuse
//     B-triangle scaled by 1/phi, and maps to exactly that one child.
//   - An obtuse B-triangle (half-thick-rhomb) splits along the cevian
//     from its apex to the golden point of its base into one acute and
//     one obtuse A-triangle, unscaled (the shrink happened on the way
//     into the B generation).
//   - An acute B-triangle (half-thin-rhomb) is congruent to an acute
//     A-triangle and maps to that one child, unscaled.
//
// Two consecutive half-deflations therefore shrink by exactly 1/phi and
// return to the starting tile set, reproducing the canonical Penrose
// deflation (a half-kite becomes two half-kites and a half-dart).
//
// The anchors and rotations below were derived so that every internal
// seam between siblings carries canceling labels and every subdivided
// parent edge carries the same child-label sequence wherever that parent
// label occurs; tilemgr.Manager.Decompose re-verifies this on every add.
var halfDeflation = map[string][]childSpec{
	"A_K1": {
		{class: "B_L1", anchor: ptX, rot: 8, shrink: true},
		{class: "B_S2", anchor: ptY, rot: 16, shrink: true},
	},
	"A_K2": {
		{class: "B_L2", anchor: ptY, rot: 12, shrink: true},
		{class: "B_S1", anchor: ptY, rot: 16, shrink: true},
	},
	"A_D1": {
		{class: "B_L2", anchor: ptO, rot: 18, shrink: true},
	},
	"A_D2": {
		{class: "B_L1", anchor: ptO, rot: 2, shrink: true},
	},
	"B_L1": {
		{class: "A_K2", anchor: ptO, rot: 18},
		{class: "A_D2", anchor: ptT, rot: 10},
	},
	"B_L2": {
		{class: "A_K1", anchor: ptO, rot: 2},
		{class: "A_D1", anchor: ptT, rot: 10},
	},
	"B_S1": {
		{class: "A_K2", anchor: ptO, rot: 18},
	},
	"B_S2": {
		{class: "A_K1", anchor: ptU, rot: 10},
	},
}

// localTransform builds the similarity a childSpec describes: rotate,
// optionally scale by 1/phi, then translate to the anchor.
func (cs childSpec) localTransform() geom.AffineTransform {
	t := geom.Rotation(cs.rot)
	if cs.shrink {
		scale, err := geom.UniformScaling(numfield.InvPhi)
		if err != nil {
			panic(err) // InvPhi is a nonzero constant
		}
		t = t.Compose(scale)
	}
	return t.Compose(geom.Translation(cs.anchor.X, cs.anchor.Y))
}

// Decompose applies the named substitution rule to ti, returning its
// children and true, or (nil, false) if the rule does not apply to ti's
// class.
func (ti tileImpl) Decompose(ruleID string) ([]Tile, bool) {
	switch ruleID {
	case RuleToA:
		pair, ok := toAChildren[ti.class.name]
		if !ok {
			return nil, false
		}
		return []Tile{
			tileImpl{class: classes[pair[0]], t: ti.t},
			tileImpl{class: classes[pair[1]], t: ti.t},
		}, true

	case RuleToB:
		pair, ok := toBChildren[ti.class.name]
		if !ok {
			return nil, false
		}
		return []Tile{
			tileImpl{class: classes[pair[0]], t: ti.t},
			tileImpl{class: classes[pair[1]], t: ti.t},
		}, true

	case RuleToP2:
		parent, ok := toP2Parent[ti.class.name]
		if !ok {
			return nil, false
		}
		return []Tile{tileImpl{class: classes[parent], t: ti.t}}, true

	case RuleToP3:
		parent, ok := toP3Parent[ti.class.name]
		if !ok {
			return nil, false
		}
		return []Tile{tileImpl{class: classes[parent], t: ti.t}}, true

	case RuleHalfDeflation:
		specs, ok := halfDeflation[ti.class.name]
		if !ok {
			return nil, false
		}
		out := make([]Tile, len(specs))
		for i, cs := range specs {
			out[i] = tileImpl{class: classes[cs.class], t: cs.localTransform().Compose(ti.t)}
		}
		return out, true

	case RuleDeflation:
		first, ok := ti.Decompose(RuleHalfDeflation)
		if !ok {
			return nil, false
		}
		out := make([]Tile, 0, len(first)*2)
		for _, child := range first {
			grandchildren, ok := child.Decompose(RuleHalfDeflation)
			if !ok {
				return nil, false
			}
			out = append(out, grandchildren...)
		}
		return out, true
	}
	return nil, false
}

// KnownChildClasses reports the prototile class names Decompose can
// produce for the given rule and parent class, or nil if the rule does
// not apply to that class.
func KnownChildClasses(ruleID, className string) []string {
	switch ruleID {
	case RuleToA:
		if pair, ok := toAChildren[className]; ok {
			return []string{pair[0], pair[1]}
		}
	case RuleToB:
		if pair, ok := toBChildren[className]; ok {
			return []string{pair[0], pair[1]}
		}
	case RuleToP2:
		if parent, ok := toP2Parent[className]; ok {
			return []string{parent}
		}
	case RuleToP3:
		if parent, ok := toP3Parent[className]; ok {
			return []string{parent}
		}
	case RuleHalfDeflation:
		specs, ok := halfDeflation[className]
		if !ok {
			return nil
		}
		out := make([]string, len(specs))
		for i, cs := range specs {
			out[i] = cs.class
		}
		return out
	case RuleDeflation:
		half := KnownChildClasses(RuleHalfDeflation, className)
		if half == nil {
			return nil
		}
		var out []string
		for _, h := range half {
			out = append(out, KnownChildClasses(RuleHalfDeflation, h)...)
		}
		return out
	}
	return nil
}
