package schedule

import (
	"fmt"
	"strings"
)

// Site is one externally published attendance page.
type Site struct {
	ID      string
	Name    string
	BaseURL string
}

// ParseSites reads the SYNC_SITES format: "001=神田=https://a.example/attend.php;002=..."
// Entries with a missing field are rejected rather than silently dropped, since
// a typo here would quietly exclude a whole site from every sync run.
func ParseSites(raw string) ([]Site, error) {
	var sites []Site
	for _, chunk := range strings.Split(raw, ";") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		parts := strings.SplitN(chunk, "=", 3)
		if len(parts) != 3 || parts[0] == "" || parts[2] == "" {
			return nil, fmt.Errorf("malformed site entry %q, want id=name=url", chunk)
		}
		sites = append(sites, Site{
			ID:      strings.TrimSpace(parts[0]),
			Name:    strings.TrimSpace(parts[1]),
			BaseURL: strings.TrimSpace(parts[2]),
		})
	}
	if len(sites) == 0 {
		return nil, fmt.Errorf("no sync sites configured")
	}
	return sites, nil
}
