// Package template defines the seam page behaviours use to turn data into
// markup fragments. The pongo subpackage provides the default engine.
package template
