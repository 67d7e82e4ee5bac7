package factions

import (
	"fmt"
	"sort"
	"strings"

	"infinity-tools/feature/dataset"
)

// Candidate is a faction considered as the owner of a data file.
type Candidate struct {
	ID      int
	Count   int
	Percent float64
}

// Report is the outcome of the ownership heuristic for a single data file.
// When Candidates is non-empty the file is attributed to those factions;
// otherwise Top names the most frequent faction for a MIXED file. Empty is
// set when there is nothing to count.
type Report struct {
	Empty      bool
	Note       string
	TotalUnits int
	Candidates []Candidate
	Top        Candidate
}

// ownerThreshold is the share of units a faction must exceed (strictly) to
// count as a candidate owner. Exactly 50% is still MIXED.
const ownerThreshold = 50.0

// Identify runs a frequency analysis over one file's unit list: how often
// does each faction ID occur, and does any faction dominate?
func Identify(units []*dataset.Unit) Report {
	if len(units) == 0 {
		return Report{Empty: true, Note: "Unit list is empty"}
	}

	counts := make(map[int]int)
	for _, u := range units {
		for _, fid := range u.Factions {
			counts[fid]++
		}
	}
	if len(counts) == 0 {
		return Report{Empty: true, Note: "No faction data found"}
	}

	total := len(units)
	all := make([]Candidate, 0, len(counts))
	for fid, count := range counts {
		all = append(all, Candidate{
			ID:      fid,
			Count:   count,
			Percent: float64(count) / float64(total) * 100,
		})
	}
	// Count descending, then ID ascending so ties display deterministically.
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].ID < all[j].ID
	})

	rep := Report{TotalUnits: total, Top: all[0]}
	for _, c := range all {
		if c.Percent > ownerThreshold {
			rep.Candidates = append(rep.Candidates, c)
		}
	}
	return rep
}

// Columns renders the report as the two display columns of the factions
// table: the owning faction ID (or MIXED/EMPTY) and a description.
func (r Report) Columns(md dataset.Metadata) (idCol, desc string) {
	if r.Empty {
		return "EMPTY", r.Note
	}
	if len(r.Candidates) == 0 {
		return "MIXED", fmt.Sprintf("Top: %s (%d/%d)", md.FactionName(r.Top.ID), r.Top.Count, r.TotalUnits)
	}

	parts := make([]string, 0, len(r.Candidates))
	for _, c := range r.Candidates {
		parts = append(parts, fmt.Sprintf("%s (%.0f%%)", md.FactionName(c.ID), c.Percent))
	}
	return fmt.Sprintf("%d", r.Candidates[0].ID), strings.Join(parts, ", ")
}
