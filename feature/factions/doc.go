// Package factions guesses which faction a data file represents.
//
// The heuristic is frequency analysis: count how many of the file's units
// reference each faction ID and attribute the file to every faction that
// covers more than half the units. Files where no faction clears the bar are
// reported as MIXED (showing the most frequent faction for reference), files
// without units or faction references as EMPTY. It is a descriptive aid for
// eyeballing a directory, not a classifier anything depends on.
package factions
