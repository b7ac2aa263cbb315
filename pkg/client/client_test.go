package client_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navya9866/Smart-agriculture/database"
	"github.com/navya9866/Smart-agriculture/entities"
	"github.com/navya9866/Smart-agriculture/pkg/client"
	"github.com/navya9866/Smart-agriculture/pkg/logger"
	"github.com/navya9866/Smart-agriculture/pkg/store"
	"github.com/navya9866/Smart-agriculture/router"
)

var maize = entities.InsertCrop{Name: "Maize", GrowthDurationDays: 100, OptimalTempMin: 18, OptimalTempMax: 32,
	OptimalHumidityMin: 40, OptimalHumidityMax: 60, SoilType: "Sandy"}

type recorded []client.Notification

func (r *recorded) Notify(n client.Notification) { *r = append(*r, n) }

func seededServer(t *testing.T) (*httptest.Server, database.Stores) {
	t.Helper()
	db, err := database.OpenMemory()
	require.NoError(t, err)
	stores := store.New(db)
	_, err = database.Seed(context.Background(), stores, database.SeedOptions{RandomSeed: 3})
	require.NoError(t, err)
	srv := httptest.NewServer(router.NewApp(db, router.Options{}))
	t.Cleanup(srv.Close)
	return srv, stores
}

func TestReadsAgainstServer(t *testing.T) {
	ctx := context.Background()
	srv, _ := seededServer(t)
	c, err := client.New(srv.URL)
	require.NoError(t, err)

	crops, err := c.Crops(ctx)
	require.NoError(t, err)
	require.Len(t, crops, 2)

	crop, err := c.Crop(ctx, crops[0].ID)
	require.NoError(t, err)
	require.NotNil(t, crop)
	assert.Equal(t, crops[0], *crop)

	missing, err := c.Crop(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, missing)

	none, err := c.Crop(ctx, 0)
	require.NoError(t, err)
	assert.Nil(t, none)

	rice := crops[1].ID
	all, err := c.MarketTrends(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 10)
	some, err := c.MarketTrends(ctx, &rice)
	require.NoError(t, err)
	assert.Len(t, some, 5)
	assert.True(t, c.Cached(client.Key(client.PathMarketTrends, "")))
	assert.True(t, c.Cached(client.Key(client.PathMarketTrends, "2")))

	res, err := c.CropResources(ctx, &crops[0].ID)
	require.NoError(t, err)
	assert.Len(t, res, 2)

	logs, err := c.EnvironmentalLogs(ctx, &rice)
	require.NoError(t, err)
	assert.Len(t, logs, 5)

	labor, err := c.Labor(ctx)
	require.NoError(t, err)
	assert.Len(t, labor, 3)
}

func TestCreateInvalidatesCropList(t *testing.T) {
	ctx := context.Background()
	srv, stores := seededServer(t)
	var notes recorded
	c, err := client.New(srv.URL, client.WithNotifier(&notes))
	require.NoError(t, err)

	first, err := c.Crops(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)

	// A write behind the client's back stays invisible until invalidation.
	sorghum := entities.Crop{Name: "Sorghum", GrowthDurationDays: 110, SoilType: "Loam"}
	require.NoError(t, stores.Crops.Create(ctx, &sorghum))
	cached, err := c.Crops(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 2)

	trends, err := c.MarketTrends(ctx, nil)
	require.NoError(t, err)

	created, err := c.CreateCrop(ctx, maize)
	require.NoError(t, err)
	assert.Equal(t, "Maize", created.Name)
	assert.False(t, c.Cached(client.Key(client.PathCrops, "")))
	assert.True(t, c.Cached(client.Key(client.PathMarketTrends, "")), "other reads stay cached")

	fresh, err := c.Crops(ctx)
	require.NoError(t, err)
	assert.Len(t, fresh, 4)
	assert.Equal(t, *created, fresh[3])

	again, err := c.MarketTrends(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, trends, again)

	require.Len(t, notes, 1)
	assert.Equal(t, client.Notification{Title: "Success", Description: "Crop created successfully"}, notes[0])
}

func TestCachedReadsAreIndependentCopies(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if r.URL.Path == "/api/crops/7" {
			http.Error(w, `{"message":"Crop not found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"region":"North Plains","date":"2024-05-01","availableWorkers":150,"dailyWage":40.5},` +
			`{"id":2,"region":"South Valley","date":"2024-05-01","availableWorkers":200,"dailyWage":35}]`))
	}))
	defer srv.Close()

	c, err := client.New(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := c.Labor(ctx)
	require.NoError(t, err)
	require.Len(t, first, 2)
	first[0], first[1] = first[1], first[0]
	first[0].Region = "changed"

	second, err := c.Labor(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
	assert.Equal(t, "North Plains", second[0].Region)
	assert.Equal(t, "South Valley", second[1].Region)

	none, err := c.Crop(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, none)
	none, err = c.Crop(ctx, 7)
	require.NoError(t, err)
	assert.Nil(t, none)
	assert.Equal(t, 2, hits, "404 is cached too")
}

func TestCreateServerValidation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Expected number, received string","field":"growthDurationDays"}`))
	}))
	defer srv.Close()

	var notes recorded
	c, err := client.New(srv.URL, client.WithNotifier(&notes))
	require.NoError(t, err)

	_, err = c.CreateCrop(context.Background(), maize)
	var ve *client.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "growthDurationDays", ve.Field)
	assert.Equal(t, "Expected number, received string", ve.Error())

	require.Len(t, notes, 1)
	assert.True(t, notes[0].Destructive)
	assert.Equal(t, "Expected number, received string", notes[0].Description)
}

func TestCreateServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"Internal Server Error"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := client.New(srv.URL)
	require.NoError(t, err)
	_, err = c.CreateCrop(context.Background(), maize)
	var fe *client.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "failed to create crop", fe.Error())
	assert.Equal(t, http.StatusInternalServerError, fe.Status)
}

func TestShapeMismatchIsLogged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"region":"North Plains","date":"2024-05-01","availableWorkers":"many","dailyWage":40}]`))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	c, err := client.New(srv.URL, client.WithLogger(logger.New(&buf, "info", "text")))
	require.NoError(t, err)

	_, err = c.Labor(context.Background())
	var se *client.ShapeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "0.availableWorkers", se.Err.Field)
	assert.Contains(t, buf.String(), "[schema] laborAvailability.list validation failed")
	assert.False(t, c.Cached(client.Key(client.PathLabor, "")))
}

func TestFetchErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	c, err := client.New(srv.URL)
	require.NoError(t, err)

	_, err = c.Crops(context.Background())
	var fe *client.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "failed to fetch crops", err.Error())
	assert.Equal(t, http.StatusInternalServerError, fe.Status)

	srv.Close()
	_, err = c.MarketTrends(context.Background(), nil)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "failed to fetch market trends", err.Error())
	assert.Zero(t, fe.Status)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestCookiesAreSentBack(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ck, err := r.Cookie("session"); err == nil {
			seen = append(seen, ck.Value)
		} else {
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, err := client.New(srv.URL)
	require.NoError(t, err)
	_, err = c.Labor(context.Background())
	require.NoError(t, err)
	_, err = c.Crops(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"abc"}, seen)
}

func TestNewRejectsRelativeURL(t *testing.T) {
	_, err := client.New("/api")
	assert.Error(t, err)
}
