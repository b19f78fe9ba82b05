package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClient_Geocode_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Champ de Mars, Paris", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"48.8584","lon":"2.2945"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	pt := client.Geocode(context.Background(), "Champ de Mars, Paris")

	assert.InDelta(t, 2.2945, pt.Lon, 0.0001)
	assert.InDelta(t, 48.8584, pt.Lat, 0.0001)
	assert.False(t, pt.IsZero())
}

func TestClient_Geocode_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	pt := client.Geocode(context.Background(), "nowhere at all")

	assert.True(t, pt.IsZero())
}

func TestClient_Geocode_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	pt := client.Geocode(context.Background(), "Champ de Mars, Paris")

	assert.True(t, pt.IsZero())
}

func TestClient_Geocode_BadCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"not-a-number","lon":"2.2945"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	pt := client.Geocode(context.Background(), "Champ de Mars, Paris")

	assert.True(t, pt.IsZero())
}

func TestClient_Geocode_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`[{"lat":"48.8584","lon":"2.2945"}]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 50*time.Millisecond)
	pt := client.Geocode(context.Background(), "Champ de Mars, Paris")

	assert.True(t, pt.IsZero())
}

func TestPoint_IsZero(t *testing.T) {
	assert.True(t, Point{}.IsZero())
	assert.False(t, Point{Lon: 2.29, Lat: 48.85}.IsZero())
	assert.False(t, Point{Lat: 48.85}.IsZero())
}
