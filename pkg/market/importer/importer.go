// Package importer scrapes market price tables out of HTML pages.
package importer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const DefaultMaxBytes = 2 << 20

// ErrNoTable is returned when no table on the page has date and price columns.
var ErrNoTable = errors.New("no price table found")

type Row struct {
	Date        string // YYYY-MM-DD
	PricePerTon int
	MarketName  string
}

var dateLayouts = []string{"2006-01-02", "2006/01/02", "02.01.2006", "Jan 2 2006", "January 2 2006"}

// Fetch downloads an HTML page, refusing bodies larger than maxBytes.
func Fetch(ctx context.Context, client *http.Client, url string, maxBytes int) ([]byte, error) {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
	}
	if resp.ContentLength > int64(maxBytes) {
		return nil, fmt.Errorf("page too large")
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if ct != "" && !strings.Contains(ct, "text/html") {
		return nil, fmt.Errorf("unsupported content-type: %s", ct)
	}
	return io.ReadAll(&io.LimitedReader{R: resp.Body, N: int64(maxBytes)})
}

// Parse reads the first table whose header has a date column and a price
// column. A "market" column is picked up when present. Rows whose date or
// price cannot be read are skipped.
func Parse(page []byte) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, err
	}
	var rows []Row
	found := false
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		cols := headerColumns(table)
		dateCol, okDate := cols["date"]
		priceCol, okPrice := cols["price"]
		if !okDate || !okPrice {
			return true
		}
		marketCol, hasMarket := cols["market"]
		found = true
		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			cells := tr.Find("td")
			if cells.Length() == 0 {
				return
			}
			date, ok := normalizeDate(cellText(cells, dateCol))
			if !ok {
				return
			}
			price, ok := parsePrice(cellText(cells, priceCol))
			if !ok {
				return
			}
			row := Row{Date: date, PricePerTon: price}
			if hasMarket {
				row.MarketName = cellText(cells, marketCol)
			}
			rows = append(rows, row)
		})
		return false
	})
	if !found {
		return nil, ErrNoTable
	}
	return rows, nil
}

// headerColumns maps the normalized header keywords date, price and market
// to their column index. Headers are read from th cells of the first row.
func headerColumns(table *goquery.Selection) map[string]int {
	cols := map[string]int{}
	table.Find("tr").First().Find("th").Each(func(i int, th *goquery.Selection) {
		h := strings.ToLower(strings.TrimSpace(th.Text()))
		for _, key := range []string{"date", "price", "market"} {
			if _, seen := cols[key]; !seen && strings.Contains(h, key) {
				cols[key] = i
			}
		}
	})
	return cols
}

func cellText(cells *goquery.Selection, i int) string {
	return strings.Join(strings.Fields(cells.Eq(i).Text()), " ")
}

func normalizeDate(s string) (string, bool) {
	s = strings.ReplaceAll(s, ",", "")
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// parsePrice drops currency symbols, thousands separators and units, and
// rounds to whole units.
func parsePrice(s string) (int, bool) {
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return int(math.Round(f)), true
}
