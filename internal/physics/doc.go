// Package physics computes the effects of a meteor impact from a handful
// of physical inputs. Every function is pure and deterministic: same
// parameters in, bit-identical result out, no I/O, no retained state, safe
// to call from any number of goroutines.
//
// # Formula contracts
//
// The constants and exponents below are contracts, not tunables. They come
// from simplified empirical scaling laws (Schmidt-Holsapple style crater
// scaling, nuclear-effects blast curves) and were chosen for plausible
// orders of magnitude, not research-grade accuracy.
//
// Mass and energy:
//
//	volume = (4/3)·π·(d/2)³           sphere, d in meters
//	mass   = volume · density          kg
//	E      = 0.5 · mass · v²           joules
//	E_mt   = E / 4.184e15              megatons TNT
//
// Crater (meters, converted to km for the result):
//
//	D     = 2.0 · d^0.78 · (v/1000)^0.44 · sin(angle)
//	depth = D / 5                      fixed aspect ratio
//	vol   = (π/3) · (D/2)² · depth     cone approximation
//
// Thermal:
//
//	thermal  = 0.4 · E                            joules
//	fireball = 0.28 · E_mt^0.33 · 1000            meters
//	temp     = 5000 + E_mt^0.5 · 500              kelvin
//
// Destruction zones (km), functions of E_mt alone:
//
//	total    = 2.0 · fireball_km
//	severe   = 5.0  · E_mt^0.33
//	moderate = 10.0 · E_mt^0.33
//	light    = 20.0 · E_mt^0.33
//
// Dust, impact winter, and severity are step functions of E_mt and the
// stratospheric dust mass; thresholds are half-open with strict "<", so a
// value landing exactly on a boundary belongs to the bucket above it
// (exactly 1 Mt is already "significant").
//
// # Known quirks (kept on purpose)
//
// A 0° grazing impact has sin(0) = 0, so the crater collapses to zero size
// while kinetic energy, blast zones, and thermal effects remain at full
// strength. Physically inconsistent, but it is the upstream model's
// behavior and part of the contract. Likewise 0^positive = 0 under IEEE
// semantics, so a zero diameter cleanly yields an all-zero result rather
// than an error once validation is bypassed.
package physics
