// Package core provides the terminal-facing primitives shared by the game and
// the platform layer: a colored cell buffer, actions and runtime settings.
// It has no Bubble Tea dependency so game logic stays testable.
package core
