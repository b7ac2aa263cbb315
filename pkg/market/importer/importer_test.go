package importer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pricePage = `<html><body>
<table><tr><th>Region</th><th>Notes</th></tr><tr><td>x</td><td>y</td></tr></table>
<table>
  <tr><th>Market</th><th>Date</th><th>Price (USD/ton)</th></tr>
  <tr><td>Central  Market</td><td>2024-06-01</td><td>$1,234.60</td></tr>
  <tr><td>Central Market</td><td>Jul 1, 2024</td><td>241</td></tr>
  <tr><td>Central Market</td><td>soon</td><td>250</td></tr>
  <tr><td>Central Market</td><td>2024/08/01</td><td>n/a</td></tr>
</table>
</body></html>`

func TestParse(t *testing.T) {
	rows, err := Parse([]byte(pricePage))
	require.NoError(t, err)
	assert.Equal(t, []Row{
		{Date: "2024-06-01", PricePerTon: 1235, MarketName: "Central Market"},
		{Date: "2024-07-01", PricePerTon: 241, MarketName: "Central Market"},
	}, rows)
}

func TestParseNoTable(t *testing.T) {
	_, err := Parse([]byte(`<p>closed today</p>`))
	assert.ErrorIs(t, err, ErrNoTable)
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/prices":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(pricePage))
		case "/json":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	body, err := Fetch(context.Background(), srv.Client(), srv.URL+"/prices", 0)
	require.NoError(t, err)
	assert.Equal(t, pricePage, string(body))

	_, err = Fetch(context.Background(), srv.Client(), srv.URL+"/json", 0)
	assert.ErrorContains(t, err, "unsupported content-type")

	_, err = Fetch(context.Background(), srv.Client(), srv.URL+"/missing", 0)
	assert.ErrorContains(t, err, "status 404")

	_, err = Fetch(context.Background(), srv.Client(), srv.URL+"/prices", 10)
	assert.ErrorContains(t, err, "too large")
}
