// Package dataset loads the static unit dataset from a directory of JSON files.
//
// The directory holds one metadata.json with the ID to name tables (factions,
// weapons, skills, equips) and any number of per-faction data files, each with
// a top-level "units" list. Everything is read once into memory; nothing is
// ever written back.
//
// # Access Sets
//
// Each unit caches three ID sets (weapons, skills, equipment) covering every
// reference reachable from any profile or option in its profile groups. The
// sets are computed by ComputeAccess during load and treated as immutable
// afterwards; they are what makes substring search over thousands of units a
// set of O(1) membership tests.
//
// # Error Policy
//
// A missing or unparsable metadata.json aborts the load. A bad data file does
// not: it is logged and skipped, matching the throwaway-script origin of this
// tooling where one corrupt faction file should not block the rest.
package dataset
