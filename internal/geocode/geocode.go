package geocode

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
)

// Point is a WGS84 coordinate pair.
type Point struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// IsZero reports whether p is the sentinel coordinate (0, 0).
func (p Point) IsZero() bool {
	return p.Lon == 0 && p.Lat == 0
}

// Geocoder resolves a free-text address into a coordinate pair. It never
// fails: any lookup problem yields the sentinel (0, 0) so that writes
// depending on it proceed.
type Geocoder interface {
	Geocode(ctx context.Context, address string) Point
}

// Client talks to a Nominatim-compatible search endpoint.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("User-Agent", "garagehub/1.0"),
	}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode returns the first match for the address, or (0, 0) on any failure.
func (c *Client) Geocode(ctx context.Context, address string) Point {
	var results []searchResult

	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "json",
			"q":      address,
			"limit":  "1",
		}).
		SetResult(&results).
		Get("/search")

	if err != nil {
		log.Printf("geocode_failed address=%q error=%q", address, err.Error())
		return Point{}
	}
	if !resp.IsSuccess() || len(results) == 0 {
		log.Printf("geocode_no_match address=%q status=%d", address, resp.StatusCode())
		return Point{}
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lon, lonErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lonErr != nil {
		log.Printf("geocode_bad_coords address=%q lat=%q lon=%q", address, results[0].Lat, results[0].Lon)
		return Point{}
	}

	return Point{Lon: lon, Lat: lat}
}
