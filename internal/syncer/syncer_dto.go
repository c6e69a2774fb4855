package syncer

// DaySummary reports one (site, date) merge outcome. Unresolved carries the
// scraped names that matched no staff member, for roster maintenance.
type DaySummary struct {
	Site       string   `json:"site"`
	Date       string   `json:"date,omitempty"`
	Synced     int      `json:"synced"`
	Shadowed   int      `json:"shadowed"`
	Removed    int      `json:"removed"`
	Failed     int      `json:"failed"`
	Unresolved []string `json:"unresolved,omitempty"`
	Err        string   `json:"error,omitempty"`
}

type Summary struct {
	Synced     int          `json:"synced"`
	Shadowed   int          `json:"shadowed"`
	Removed    int          `json:"removed"`
	Failed     int          `json:"failed"`
	Unresolved int          `json:"unresolved"`
	Days       []DaySummary `json:"days"`
}

func (s *Summary) add(day DaySummary) {
	s.Synced += day.Synced
	s.Shadowed += day.Shadowed
	s.Removed += day.Removed
	s.Failed += day.Failed
	s.Unresolved += len(day.Unresolved)
	if day.Err != "" {
		s.Failed++
	}
	s.Days = append(s.Days, day)
}
