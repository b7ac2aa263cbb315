package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navya9866/Smart-agriculture/database"
	"github.com/navya9866/Smart-agriculture/pkg/report"
	"github.com/navya9866/Smart-agriculture/pkg/store"
	"github.com/navya9866/Smart-agriculture/router"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := getRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSeedExportImport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "agri.db")

	out, err := run(t, "seed", "--db-path", dbPath, "--random-seed", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "market_trends")

	out, err = run(t, "seed", "--db-path", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "already seeded")

	page := filepath.Join(dir, "prices.html")
	require.NoError(t, os.WriteFile(page, []byte(`<table>
<tr><th>Date</th><th>Price</th></tr>
<tr><td>2024-06-01</td><td>255</td></tr>
<tr><td>2024-07-01</td><td>262</td></tr>
</table>`), 0o644))
	var pushed []string
	gw := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		pushed = append(pushed, r.Method+" "+r.URL.Path)
	}))
	defer gw.Close()

	out, err = run(t, "import-prices", "--db-path", dbPath, "--crop", "1", "--file", page,
		"--market", "Central Market", "--pushgateway", gw.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "imported 2 prices for crop 1")
	assert.Equal(t, []string{"PUT /metrics/job/import_prices"}, pushed)

	_, err = run(t, "import-prices", "--db-path", dbPath, "--crop", "77", "--file", page)
	assert.ErrorContains(t, err, "crop 77 does not exist")

	xlsx := filepath.Join(dir, "out.xlsx")
	out, err = run(t, "export", "--db-path", dbPath, "--out", xlsx)
	require.NoError(t, err)
	assert.Contains(t, out, "(2 crops)")

	d, err := report.OpenWorkbook(xlsx)
	require.NoError(t, err)
	assert.Len(t, d.MarketTrends, 12)

	// The exported workbook seeds a fresh store with the same rows.
	fresh := filepath.Join(dir, "fresh.db")
	_, err = run(t, "seed", "--db-path", fresh, "--xlsx", xlsx)
	require.NoError(t, err)
	_, err = run(t, "export", "--db-path", fresh, "--out", filepath.Join(dir, "fresh.xlsx"))
	require.NoError(t, err)
	again, err := report.OpenWorkbook(filepath.Join(dir, "fresh.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, d, again)
}

func TestDashboard(t *testing.T) {
	db, err := database.OpenMemory()
	require.NoError(t, err)
	_, err = database.Seed(context.Background(), store.New(db), database.SeedOptions{RandomSeed: 9})
	require.NoError(t, err)
	srv := httptest.NewServer(router.NewApp(db, router.Options{}))
	defer srv.Close()

	out, err := run(t, "dashboard", "--api", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Monitored crops:   2")
	assert.Contains(t, out, "Active regions:    3")
	assert.Contains(t, out, "Avg daily wage:    $40.00")
	assert.Contains(t, out, "East Hills")
	assert.Contains(t, out, "2024-05-01")

	out, err = run(t, "dashboard", "--api", srv.URL, "--crop", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Wheat (Loam soil, 120 days)")
	assert.Contains(t, out, "Chlorpyrifos")
	assert.Contains(t, out, "Reproductive")

	_, err = run(t, "dashboard", "--api", srv.URL, "--crop", "404")
	assert.ErrorContains(t, err, "crop 404 not found")
}
