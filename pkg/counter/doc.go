// Package counter animates a statistic from zero up to its target value.
//
// The animation is a fixed-step interpolation: every Step the running value
// grows by Target/(Duration/Step) and the floor of it is emitted, clamping
// to Target on the terminal tick. Animators are one-shot; Trigger guarantees
// that each element starts at most one.
package counter
