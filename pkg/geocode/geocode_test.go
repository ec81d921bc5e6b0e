package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"shutterplan/pkg/cache"
	"shutterplan/pkg/request"
	"shutterplan/pkg/tracker"
)

func testClient() *request.Client {
	return request.New(cache.NewMemoryCache(), tracker.New(), 5*time.Second, time.Millisecond, 1000)
}

func TestGoogleProviderResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("address") != "Melbourne CBD" {
			t.Errorf("address = %q", r.URL.Query().Get("address"))
		}
		w.Write([]byte(`{"status":"OK","results":[{"formatted_address":"Melbourne VIC, Australia","geometry":{"location":{"lat":-37.8136,"lng":144.9631}}}]}`))
	}))
	defer srv.Close()

	p := NewGoogleProvider(testClient(), "key", srv.URL, time.Hour)
	loc, err := p.Resolve(context.Background(), "Melbourne CBD")
	assert.NoError(t, err)
	assert.Equal(t, -37.8136, loc.Lat)
	assert.Equal(t, 144.9631, loc.Lon)
	assert.Equal(t, "Google Maps", loc.Source)
}

func TestGoogleProviderNoKey(t *testing.T) {
	p := NewGoogleProvider(testClient(), "", "", time.Hour)
	_, err := p.Resolve(context.Background(), "anywhere")
	assert.Error(t, err)
}

func TestGoogleProviderNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer srv.Close()

	p := NewGoogleProvider(testClient(), "key", srv.URL, time.Hour)
	_, err := p.Resolve(context.Background(), "xyzzy")
	assert.Error(t, err)
}

func TestNominatimProviderResolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"-37.8136","lon":"144.9631","display_name":"Melbourne, Victoria, Australia"}]`))
	}))
	defer srv.Close()

	p := NewNominatimProvider(testClient(), srv.URL, time.Hour)
	loc, err := p.Resolve(context.Background(), "Melbourne")
	assert.NoError(t, err)
	assert.Equal(t, "OpenStreetMap", loc.Source)
	assert.InDelta(t, -37.8136, loc.Lat, 1e-9)
}

func TestResolverFallsBack(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer primary.Close()
	secondary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"lat":"51.5","lon":"-0.12","display_name":"London"}]`))
	}))
	defer secondary.Close()

	r := NewResolver(
		NewGoogleProvider(testClient(), "key", primary.URL, time.Hour),
		NewNominatimProvider(testClient(), secondary.URL, time.Hour),
	)
	loc, err := r.Resolve(context.Background(), "London")
	assert.NoError(t, err)
	assert.Equal(t, "OpenStreetMap", loc.Source)
}

func TestResolverNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	r := NewResolver(NewNominatimProvider(testClient(), srv.URL, time.Hour))
	_, err := r.Resolve(context.Background(), "gibberish zzz")
	assert.ErrorIs(t, err, ErrNotFound)
}
