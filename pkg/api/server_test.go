package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/eventcoach/pkg/config"
	"github.com/travigo/eventcoach/pkg/dataaggregator/global"
)

const testBookings = `Code,Name,Route,Pickup,MapLink,Direction,PickupTime,Lat,Lon
ab12,Jo Bloggs,Route 1 - Banbury,Banbury Cross,https://w3w.co/filled.count.soap,Both,17:30,52.0629,-1.3398
,Sam Smith,Route 1 - Banbury,Banbury Cross,,To Venue,,,
CD34,Pat Lee,Express,Brackley,,From Venue,,52.03,-1.15
`

const testRoute = `Stop Name,Time,W3W,Lat,Lon
Banbury Cross,17:30,///filled.count.soap,52.0629,-1.3398
Silverstone,18:15,,52.0786,-1.0169
`

func setupTestApp(t *testing.T, withBookings bool) *config.Config {
	t.Helper()

	dir := t.TempDir()
	if withBookings {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bookings.csv"), []byte(testBookings), 0644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "route1.csv"), []byte(testRoute), 0644))

	cfg := config.Defaults()
	cfg.Event.Title = "End of Season Party"
	cfg.Event.ContactEmail = "transport@example.com"
	cfg.Data.BookingsPath = filepath.Join(dir, "bookings.csv")
	cfg.Data.RoutesDir = dir

	global.Setup(context.Background(), cfg)

	return cfg
}

func get(t *testing.T, cfg *config.Config, target string) (int, string) {
	t.Helper()

	resp, err := NewApp(cfg).Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestSearchPageIdle(t *testing.T) {
	cfg := setupTestApp(t, true)

	status, body := get(t, cfg, "/")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "End of Season Party")
	assert.Contains(t, body, "Find My Booking")
	assert.NotContains(t, body, "Found")
	assert.NotContains(t, body, "Code not found")
}

func TestSearchPageFound(t *testing.T) {
	cfg := setupTestApp(t, true)

	status, body := get(t, cfg, "/?code=+ab12+")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Found 2 passengers")
	assert.Contains(t, body, "Passenger: Jo Bloggs")
	assert.Contains(t, body, "Passenger: Sam Smith")
	assert.Contains(t, body, "Pickup &amp; Dropoff:</strong> Banbury Cross")
	assert.Contains(t, body, "View Route 1 Map")
	assert.Contains(t, body, "/routes/1?code=ab12")
	assert.Contains(t, body, "/// What 3 Words Link")
	assert.Contains(t, body, "Map not available")
	assert.Contains(t, body, "All coaches depart Silverstone at 01:00 AM.")
	assert.Contains(t, body, "mailto:transport@example.com?subject=Change%20Request%3A%20AB12")
}

func TestSearchPageFromVenueHidesPickupTime(t *testing.T) {
	cfg := setupTestApp(t, true)

	status, body := get(t, cfg, "/?code=cd34")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Dropoff:</strong> Brackley")
	assert.NotContains(t, body, "Time:")
	assert.NotContains(t, body, "View Route")
	assert.Contains(t, body, "Route:</strong> Express")
}

func TestSearchPageNotFound(t *testing.T) {
	cfg := setupTestApp(t, true)

	for _, target := range []string{"/?code=nope", "/?code="} {
		status, body := get(t, cfg, target)

		assert.Equal(t, http.StatusOK, status, target)
		assert.Contains(t, body, "Code not found. Please check your reference.", target)
		assert.Contains(t, body, "Reset Search", target)
	}
}

func TestSearchPageUnavailable(t *testing.T) {
	cfg := setupTestApp(t, false)

	status, body := get(t, cfg, "/?code=ab12")

	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Contains(t, body, "System Error")
	assert.NotContains(t, body, "Find My Booking")
}

func TestRoutePage(t *testing.T) {
	cfg := setupTestApp(t, true)

	status, body := get(t, cfg, "/routes/1?code=AB12")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Route 1 Details")
	assert.Contains(t, body, "Banbury Cross")
	assert.Contains(t, body, "https://w3w.co/filled.count.soap")
	assert.Contains(t, body, "Route Map")
	assert.Contains(t, body, "href=\"/?code=AB12\"")
}

func TestRoutePageComingSoon(t *testing.T) {
	cfg := setupTestApp(t, true)

	status, body := get(t, cfg, "/routes/7")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Route data for Route 7 is coming soon.")
	assert.Contains(t, body, "Back to Ticket Search")
}

func TestRoutePageNoRouteSelected(t *testing.T) {
	cfg := setupTestApp(t, true)

	status, body := get(t, cfg, "/routes")

	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "No route selected. Please go back to the ticket page.")
}

func TestAPIBooking(t *testing.T) {
	cfg := setupTestApp(t, true)

	status, body := get(t, cfg, "/api/bookings/ab12")
	require.Equal(t, http.StatusOK, status)

	var response struct {
		Code       string                   `json:"code"`
		Passengers []map[string]interface{} `json:"passengers"`
		Directives []map[string]interface{} `json:"directives"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &response))

	assert.Equal(t, "AB12", response.Code)
	require.Len(t, response.Passengers, 2)
	assert.Equal(t, "Jo Bloggs", response.Passengers[0]["name"])
	assert.NotContains(t, response.Passengers[0], "latitude")
	assert.Equal(t, "Pickup & Dropoff", response.Directives[0]["direction_label"])

	status, _ = get(t, cfg, "/api/bookings/nope")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAPIBookingEscapedCode(t *testing.T) {
	cfg := setupTestApp(t, true)

	for _, target := range []string{"/api/bookings/%20ab12%20", "/api/bookings/%41b12"} {
		status, body := get(t, cfg, target)
		require.Equal(t, http.StatusOK, status, target)

		var response struct {
			Code string `json:"code"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &response))
		assert.Equal(t, "AB12", response.Code, target)
	}
}

func TestAPIRoute(t *testing.T) {
	cfg := setupTestApp(t, true)

	status, body := get(t, cfg, "/api/routes/1")
	require.Equal(t, http.StatusOK, status)

	var response struct {
		Route struct {
			ID    string                   `json:"id"`
			Stops []map[string]interface{} `json:"stops"`
		} `json:"route"`
		Path struct {
			Source string `json:"source"`
		} `json:"path"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &response))

	assert.Equal(t, "1", response.Route.ID)
	require.Len(t, response.Route.Stops, 2)
	assert.Contains(t, response.Route.Stops[0], "latitude")
	assert.Equal(t, "straight", response.Path.Source)

	status, _ = get(t, cfg, "/api/routes/../bookings")
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = get(t, cfg, "/api/routes/9")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAPIHealth(t *testing.T) {
	cfg := setupTestApp(t, true)

	status, body := get(t, cfg, "/api/health")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok","bookings":3}`, body)

	cfg = setupTestApp(t, false)

	status, _ = get(t, cfg, "/api/health")
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestAPIVersion(t *testing.T) {
	cfg := setupTestApp(t, true)

	status, body := get(t, cfg, "/api/version")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"version":"v0.1"}`, body)
}
