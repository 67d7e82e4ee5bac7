// Package report renders search results.
//
// Two console modes: a flat table (one row per matched unit) and a by-faction
// aggregation that lists matched units under every faction they belong to and
// names the factions left without access. Both write to an io.Writer and have
// no side effects beyond it.
//
// The optional JSON and XLSX exports share the same row shape and sort order
// as the flat table.
package report
