// Package query implements substring search over the unit database.
//
// A search takes up to three optional name substrings (weapon, skill,
// equipment), resolves each against the metadata name tables and then filters
// units by membership of the resolved IDs in their cached access sets. Each
// match carries reason strings naming the exact entries that matched.
//
// Deduplication is by ISC code: two units sharing a code collapse into the
// first one seen. The dataset is assumed not to do that, but the loader only
// warns rather than enforcing it.
package query
