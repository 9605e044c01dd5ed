//go:build !dpllchecks

package dpll

// checksEnabled is false in ordinary builds; see checks_dpllchecks.go.
const checksEnabled = false
