// Package rules holds the detector contract and the built-in detector
// registry. Detectors are pure text checks assembled once into an ordered,
// immutable Registry; adding a detector never requires touching another one.
package rules
