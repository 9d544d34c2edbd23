package stats

import (
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/SiRipo92/chess-manager/internal/models"
)

// FormatPlayerIndex renders the cross-tournament rollup as a table,
// best total first.
func FormatPlayerIndex(w io.Writer, index map[string]*PlayerStats) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Nom", "Participations", "Victoires", "Matchs", "Points"})

	for _, s := range SortedStats(index) {
		table.Append([]string{
			s.NationalID,
			s.Name,
			strconv.Itoa(s.Participations),
			strconv.Itoa(s.Victories),
			strconv.Itoa(s.Matches),
			formatPoints(s.Points),
		})
	}
	table.Render()
}

// FormatStandings renders one tournament's ledger as a ranked table.
func FormatStandings(w io.Writer, rec models.TournamentRecord) {
	names := make(map[string]string, len(rec.Players))
	for _, p := range rec.Players {
		names[p.NationalID] = p.FullName()
	}

	type row struct {
		id    string
		score float64
	}
	rows := make([]row, 0, len(rec.Scores))
	for id, score := range rec.Scores {
		rows = append(rows, row{id: id, score: score})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].score != rows[j].score {
			return rows[i].score > rows[j].score
		}
		return rows[i].id < rows[j].id
	})

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Rang", "ID", "Nom", "Points"})
	for i, r := range rows {
		table.Append([]string{
			strconv.Itoa(i + 1),
			r.id,
			names[r.id],
			formatPoints(r.score),
		})
	}
	table.Render()
}
