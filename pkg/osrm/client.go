package osrm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/travigo/eventcoach/pkg/geometry"
	"github.com/twpayne/go-polyline"
)

const DefaultProfile = "driving"

var ErrNoRoute = errors.New("osrm returned no route")

type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Geometry string  `json:"geometry"`
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

// Client asks an OSRM server for the road path between waypoints.
// It makes one attempt per call, bounded by the context and its own timeout.
type Client struct {
	BaseURL string
	Profile string

	httpClient *http.Client
}

func NewClient(baseURL string, profile string, timeout time.Duration) *Client {
	if profile == "" {
		profile = DefaultProfile
	}
	if timeout <= 0 {
		timeout = geometry.DefaultTimeout
	}

	return &Client{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		Profile:    profile,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) requestURL(waypoints []geometry.Point) string {
	coordinates := make([]string, len(waypoints))
	for i, point := range waypoints {
		coordinates[i] = strconv.FormatFloat(point.Longitude, 'f', -1, 64) + "," + strconv.FormatFloat(point.Latitude, 'f', -1, 64)
	}

	return fmt.Sprintf("%s/route/v1/%s/%s?overview=full&geometries=polyline", c.BaseURL, c.Profile, strings.Join(coordinates, ";"))
}

func (c *Client) Route(ctx context.Context, waypoints []geometry.Point) ([]geometry.Point, error) {
	if len(waypoints) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 waypoints", ErrNoRoute)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(waypoints), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "eventcoach")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	var result routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response (status %d): %w", resp.StatusCode, err)
	}

	if result.Code != "Ok" || len(result.Routes) == 0 {
		return nil, fmt.Errorf("%w: %s %s", ErrNoRoute, result.Code, result.Message)
	}

	coords, _, err := polyline.DecodeCoords([]byte(result.Routes[0].Geometry))
	if err != nil {
		return nil, fmt.Errorf("decoding geometry: %w", err)
	}

	points := make([]geometry.Point, 0, len(coords))
	for _, coord := range coords {
		points = append(points, geometry.Point{Latitude: coord[0], Longitude: coord[1]})
	}

	return points, nil
}
