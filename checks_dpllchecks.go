//go:build dpllchecks

package dpll

// checksEnabled gates the invariant assertions described in spec.md §7
// ("Invariant violations ... may be checked in debug builds and omitted
// in release builds"). Build with `-tags dpllchecks` to enable them.
const checksEnabled = true
