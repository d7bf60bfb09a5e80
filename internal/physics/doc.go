// Package physics implements the airflow: a field of ink particles drawn
// toward the screen center, swirled by coherent noise, frayed by jitter and
// pushed aside by the blade.
//
//   - [Field]: the population and its shared [Geometry]
//   - [Particle]: position, velocity, acceleration and a [Trail]
//   - [Attraction], [Flow], [Jitter], [Repulsion]: the per-frame forces
//
// Every frame each particle accumulates the four forces, integrates with
// its speed capped at [MaxSpeed], and records its position in a fixed-size
// trail.
//
// # The blade
//
// Pointer interaction only redirects particles. Nothing the blade does can
// remove one; the population empties only through [Field.FadeIfExpired]
// once the user has stopped interacting for [FadeAfter].
package physics
