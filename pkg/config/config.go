package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/travigo/eventcoach/pkg/util"
	"gopkg.in/yaml.v3"
)

const DefaultPath = "eventcoach.yaml"

type Event struct {
	Title        string `yaml:"title" validate:"required"`
	ContactEmail string `yaml:"contactEmail" validate:"omitempty,email"`
	PickupNotice string `yaml:"pickupNotice"`
	ReturnNotice string `yaml:"returnNotice"`
}

type Data struct {
	BookingsPath    string `yaml:"bookingsPath" validate:"required"`
	RoutesDir       string `yaml:"routesDir"`
	RouteFilePrefix string `yaml:"routeFilePrefix"`
	RouteFileSuffix string `yaml:"routeFileSuffix"`
}

// OSRM is optional, with no URL route lines are drawn straight between stops
type OSRM struct {
	URL     string        `yaml:"url" validate:"omitempty,url"`
	Profile string        `yaml:"profile"`
	Timeout time.Duration `yaml:"timeout" validate:"gte=0"`
}

// Redis is only used to cache road geometry and is skipped when Address is empty
type Redis struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	Database int    `yaml:"database" validate:"gte=0"`
}

type GeometryCache struct {
	Expiration time.Duration `yaml:"expiration" validate:"gte=0"`
}

type Config struct {
	Event         Event         `yaml:"event" validate:"required"`
	Data          Data          `yaml:"data" validate:"required"`
	OSRM          OSRM          `yaml:"osrm"`
	Redis         Redis         `yaml:"redis"`
	GeometryCache GeometryCache `yaml:"geometryCache"`
}

func Defaults() *Config {
	return &Config{
		Event: Event{
			Title:        "Event Coach Transport",
			PickupNotice: "Please ensure you are at your pickup point 5 mins before your time. The coach will unfortunately only be able to wait 2 minutes for any missing passengers.",
			ReturnNotice: "All coaches depart Silverstone at 01:00 AM.",
		},
		Data: Data{
			BookingsPath:    "bookings.csv",
			RoutesDir:       ".",
			RouteFilePrefix: "route",
			RouteFileSuffix: ".csv",
		},
		OSRM: OSRM{
			Profile: "driving",
			Timeout: 2 * time.Second,
		},
		GeometryCache: GeometryCache{
			Expiration: 24 * time.Hour,
		},
	}
}

// Load reads the YAML file at path over the defaults, applies any
// EVENTCOACH_ environment overrides and validates the result.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Debug().Str("path", path).Msg("No config file found, using defaults")
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	if err := cfg.applyEnvironment(util.GetEnvironmentVariables()); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnvironment(env map[string]string) error {
	overrides := map[string]*string{
		"EVENTCOACH_BOOKINGS_PATH":  &c.Data.BookingsPath,
		"EVENTCOACH_ROUTES_DIR":     &c.Data.RoutesDir,
		"EVENTCOACH_OSRM_URL":       &c.OSRM.URL,
		"EVENTCOACH_REDIS_ADDRESS":  &c.Redis.Address,
		"EVENTCOACH_REDIS_PASSWORD": &c.Redis.Password,
		"EVENTCOACH_CONTACT_EMAIL":  &c.Event.ContactEmail,
	}

	for name, field := range overrides {
		if env[name] != "" {
			*field = env[name]
		}
	}

	if env["EVENTCOACH_REDIS_DATABASE"] != "" {
		database, err := strconv.Atoi(env["EVENTCOACH_REDIS_DATABASE"])
		if err != nil {
			return fmt.Errorf("EVENTCOACH_REDIS_DATABASE: %w", err)
		}
		c.Redis.Database = database
	}

	return nil
}
