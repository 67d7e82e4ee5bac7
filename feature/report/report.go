package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"infinity-tools/feature/dataset"
	"infinity-tools/feature/query"
)

// WriteFlat prints one table row per matched unit, sorted by unit name:
// name, primary faction (with a +N suffix when the unit belongs to more) and
// the joined match reasons.
func WriteFlat(w io.Writer, md dataset.Metadata, matches []query.Match) {
	rows := make([]query.Match, len(matches))
	copy(rows, matches)
	sort.Slice(rows, func(i, j int) bool { return rows[i].Unit.Name < rows[j].Unit.Name })

	fmt.Fprintln(w, strings.Repeat("-", 60))
	fmt.Fprintf(w, "%-30s | %-30s | %s\n", "Unit Name", "Factions", "Match Reason")
	fmt.Fprintln(w, strings.Repeat("-", 60))

	for _, m := range rows {
		fmt.Fprintf(w, "%-30s | %-30s | %s\n",
			m.Unit.Name,
			factionDisplay(md, m.Unit.Factions),
			strings.Join(m.Reasons, ", "),
		)
	}
}

// WriteByFaction prints the matched units grouped under every faction they
// belong to, followed by the complementary list of factions with no matching
// unit at all.
func WriteByFaction(w io.Writer, md dataset.Metadata, matches []query.Match) {
	access := make(map[int][]*dataset.Unit)
	for _, m := range matches {
		for _, fid := range m.Unit.Factions {
			access[fid] = append(access[fid], m.Unit)
		}
	}

	banner(w, "FACTIONS WITH ACCESS")

	accessIDs := make([]int, 0, len(access))
	for fid := range access {
		accessIDs = append(accessIDs, fid)
	}
	sortByFactionName(accessIDs, md)

	for _, fid := range accessIDs {
		names := uniqueSortedNames(access[fid])
		fmt.Fprintf(w, "\n[%s] (%d units)\n", md.FactionName(fid), len(names))
		for _, name := range names {
			fmt.Fprintf(w, "  - %s\n", name)
		}
	}

	banner(w, "FACTIONS WITHOUT ACCESS")

	var missing []int
	for fid := range md.Factions {
		if _, ok := access[fid]; !ok {
			missing = append(missing, fid)
		}
	}
	if len(missing) == 0 {
		fmt.Fprintln(w, "None! All factions have access.")
		return
	}
	sortByFactionName(missing, md)
	for _, fid := range missing {
		fmt.Fprintf(w, "- %s\n", md.FactionName(fid))
	}
}

func banner(w io.Writer, title string) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", 80))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", 80))
}

func factionDisplay(md dataset.Metadata, fids []int) string {
	if len(fids) == 0 {
		return ""
	}
	display := md.FactionName(fids[0])
	if len(fids) > 1 {
		display += fmt.Sprintf(" (+%d)", len(fids)-1)
	}
	return display
}

func sortByFactionName(fids []int, md dataset.Metadata) {
	sort.Slice(fids, func(i, j int) bool {
		a, b := md.FactionName(fids[i]), md.FactionName(fids[j])
		if a != b {
			return a < b
		}
		return fids[i] < fids[j]
	})
}

func uniqueSortedNames(units []*dataset.Unit) []string {
	set := make(map[string]struct{}, len(units))
	for _, u := range units {
		set[u.Name] = struct{}{}
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
