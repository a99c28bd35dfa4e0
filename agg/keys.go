// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package agg

// Key identifies a cached quantity
type Key int

// quantities of the local-particle scope
const (
	KeyF             Key = iota // deformation gradient [9]
	KeyChi                      // micro-deformation [9]
	KeyGradChi                  // ∇χ [27]
	KeyRadius                   // reference radius
	KeyRefPoints                // reference surface points r·p [M×3]
	KeyCurPoints                // current surface points χ·(r·p) [M×3]
	KeyBox                      // bounding box of the current configuration (xmin, ymin, zmin, xmax, ymax, zmax)
	KeyRefVolume                // reference volume
	KeyCurVolume                // current volume
	KeyEnergyDensity            // bulk energy density ψ
	KeyEnergy                   // bulk energy ψ V0
	KeyMicroStress              // micro-stress P = ∂ψ/∂χ [9]
	KeyLogProbRatio             // log-probability ratio
	KeyStateVars                // updated state variables [msolid.NstateVars]

	// quantities of the surface-point scope
	KeyRefNormal // reference normal N [3]
	KeyCurNormal // current unit normal n [3]
	KeyLocalPos  // local surface reference relative position Ξ1 = r N [3]

	// quantities of the interaction-pair scope
	KeyNlRadius          // non-local radius
	KeyNlBox             // bounding box of the non-local particle
	KeyNlPos             // non-local surface reference relative position Ξ2 = -r_nl N [3]
	KeyRefDistance       // reference distance vector D [3]
	KeyChiNl             // non-local micro-deformation χnl = χ + ∇χ·dX [9]
	KeySpacing           // reference particle spacing dX = Ξ1 + D - Ξ2 [3]
	KeyCurDistance       // current distance vector [3]
	KeyOverlap           // overlap vector; map k => [3]
	KeyAdhesionEnergy    // adhesion energy density
	KeyAdhesionTraction  // adhesion traction [3]
	KeyAdhesionThickness // adhesion thickness d·n
	KeyOverlapEnergy     // overlap energy density; map k => [1]
	KeyOverlapTraction   // overlap traction; map k => [3]
	KeyOverlapThickness  // overlap thickness ‖d‖; map k => [1]
	nkeys
)

// keyInfo holds the name and scope of each quantity
var keyInfo = [nkeys]struct {
	name  string
	scope Scope
}{
	KeyF:                 {"F", LocalScope},
	KeyChi:               {"chi", LocalScope},
	KeyGradChi:           {"gradchi", LocalScope},
	KeyRadius:            {"radius", LocalScope},
	KeyRefPoints:         {"reference surface points", LocalScope},
	KeyCurPoints:         {"current surface points", LocalScope},
	KeyBox:               {"bounding box", LocalScope},
	KeyRefVolume:         {"reference volume", LocalScope},
	KeyCurVolume:         {"current volume", LocalScope},
	KeyEnergyDensity:     {"energy density", LocalScope},
	KeyEnergy:            {"energy", LocalScope},
	KeyMicroStress:       {"micro-stress", LocalScope},
	KeyLogProbRatio:      {"log-probability ratio", LocalScope},
	KeyStateVars:         {"state variables", LocalScope},
	KeyRefNormal:         {"reference normal", SurfaceScope},
	KeyCurNormal:         {"current normal", SurfaceScope},
	KeyLocalPos:          {"local reference position", SurfaceScope},
	KeyNlRadius:          {"non-local radius", InteractionScope},
	KeyNlBox:             {"non-local bounding box", InteractionScope},
	KeyNlPos:             {"non-local reference position", InteractionScope},
	KeyRefDistance:       {"reference distance", InteractionScope},
	KeyChiNl:             {"non-local chi", InteractionScope},
	KeySpacing:           {"reference spacing", InteractionScope},
	KeyCurDistance:       {"current distance", InteractionScope},
	KeyOverlap:           {"overlap", InteractionScope},
	KeyAdhesionEnergy:    {"adhesion energy density", InteractionScope},
	KeyAdhesionTraction:  {"adhesion traction", InteractionScope},
	KeyAdhesionThickness: {"adhesion thickness", InteractionScope},
	KeyOverlapEnergy:     {"overlap energy density", InteractionScope},
	KeyOverlapTraction:   {"overlap traction", InteractionScope},
	KeyOverlapThickness:  {"overlap thickness", InteractionScope},
}

// String returns the name of the quantity
func (k Key) String() string {
	if k < 0 || k >= nkeys {
		return "unknown"
	}
	return keyInfo[k].name
}

// Scope returns the scope of the quantity
func (k Key) Scope() Scope { return keyInfo[k].scope }
