package schedule

import (
	"io"
	"regexp"
	"strings"

	"github.com/yoshiboykidd/karinto-castmanager-sub000/internal/shift"

	"github.com/PuerkitoBio/goquery"
)

// nameSelector covers the markup variants observed across the published
// attendance pages; most sites use an h3 per staff member but a few wrap the
// name in a styled span or strong tag.
const nameSelector = "h3, .name, .cast_name, span.name, div.name, strong"

var timePattern = regexp.MustCompile(`(\d{1,2}:\d{2}).*?(\d{1,2}:\d{2})`)

// ParseEntries extracts (name, start, end) entries from one day's page.
// Name nodes without a time window anywhere near them are decorative markup
// and are skipped without comment. The time window is taken from the first
// HH:MM pair found in the node itself or its two enclosing blocks.
func ParseEntries(r io.Reader) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	var entries []Entry
	doc.Find(nameSelector).Each(func(_ int, sel *goquery.Selection) {
		rawName := strings.TrimSpace(sel.Text())
		if rawName == "" {
			return
		}

		context := sel.Text() + " " + sel.Parent().Text() + " " + sel.Parent().Parent().Text()
		m := timePattern.FindStringSubmatch(context)
		if m == nil {
			return
		}

		entries = append(entries, Entry{
			DisplayName: rawName,
			StartTime:   shift.PadTime(m[1]),
			EndTime:     shift.PadTime(m[2]),
		})
	})

	return entries, nil
}
