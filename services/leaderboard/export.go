package leaderboard

import (
	"encoding/csv"
	"io"
	"strconv"
)

// ExportCSV writes the current ranking as CSV, one row per vendor, matching
// the columns of the dashboard's spreadsheet export.
func (s *DefaultService) ExportCSV(w io.Writer) error {
	snapshot := s.Snapshot()

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Position", "Nom", "Ventes", "Cash Collecté", "Revenu Total"}); err != nil {
		return err
	}
	for _, entry := range snapshot.Entries {
		row := []string{
			strconv.Itoa(entry.CurrentRank),
			entry.Name,
			strconv.Itoa(entry.NbSales),
			strconv.FormatFloat(entry.CashCollected, 'f', -1, 64),
			strconv.FormatFloat(entry.TotalRevenue, 'f', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
