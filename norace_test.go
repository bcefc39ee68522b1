//go:build !race

package enginelog

const raceEnabled = false
