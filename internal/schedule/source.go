package schedule

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Entry is one scraped schedule line: the display name as published plus a
// zero-padded HH:MM window.
type Entry struct {
	DisplayName string
	StartTime   string
	EndTime     string
}

//go:generate mockgen -source=source.go -destination=mock/source_mock.go -package=mock
type Source interface {
	FetchDay(ctx context.Context, site Site, date time.Time) ([]Entry, error)
}

type httpSource struct {
	client *http.Client
	logger *zap.Logger
}

func NewHTTPSource(timeout time.Duration, logger ...*zap.Logger) Source {
	l := zap.L().Named("schedule.source")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("schedule.source")
	}
	return &httpSource{
		client: &http.Client{Timeout: timeout},
		logger: l,
	}
}

// FetchDay pulls one day's attendance page. The t parameter busts the
// publisher's page cache the same way the site's own frontend does.
func (s *httpSource) FetchDay(ctx context.Context, site Site, date time.Time) ([]Entry, error) {
	url := fmt.Sprintf("%s?date_get=%s&t=%d", site.BaseURL, date.Format("2006/01/02"), time.Now().UnixMilli())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", site.Name, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s %s: %w", site.Name, date.Format("2006-01-02"), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s %s: HTTP %d", site.Name, date.Format("2006-01-02"), resp.StatusCode)
	}

	entries, err := ParseEntries(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s %s: %w", site.Name, date.Format("2006-01-02"), err)
	}

	s.logger.Debug("fetched day",
		zap.String("site", site.Name),
		zap.String("date", date.Format("2006-01-02")),
		zap.Int("entries", len(entries)),
	)
	return entries, nil
}
