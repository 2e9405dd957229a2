package lookup

import (
	"fmt"

	"github.com/kr/pretty"
	"github.com/travigo/eventcoach/pkg/booking"
	"github.com/travigo/eventcoach/pkg/config"
	"github.com/travigo/eventcoach/pkg/dataaggregator"
	"github.com/travigo/eventcoach/pkg/dataaggregator/global"
	"github.com/travigo/eventcoach/pkg/dataaggregator/query"
	"github.com/travigo/eventcoach/pkg/geometry"
	"github.com/travigo/eventcoach/pkg/presentation"
	"github.com/travigo/eventcoach/pkg/routetable"
	"github.com/urfave/cli/v2"
)

func setup(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	global.Setup(c.Context, cfg)

	return cfg, nil
}

func RegisterBookingCLI() *cli.Command {
	return &cli.Command{
		Name:  "lookup",
		Usage: "Print the passengers and display details for a booking code",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "code",
				Usage:    "booking code to look up",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := setup(c)
			if err != nil {
				return err
			}

			records, err := dataaggregator.Lookup[[]*booking.Record](query.Booking{Code: c.String("code")})
			if err != nil {
				return err
			}

			if len(records) == 0 {
				return cli.Exit("Code not found", 1)
			}

			code := booking.NormaliseCode(c.String("code"))

			fmt.Printf("Found %d passengers\n", len(records))
			for _, record := range records {
				pretty.Println(record)
				pretty.Println(presentation.Present(record))
			}

			if link := presentation.AmendmentLink(cfg.Event.ContactEmail, code, records[0].Name); link != "" {
				fmt.Println(link)
			}

			return nil
		},
	}
}

func RegisterRouteCLI() *cli.Command {
	return &cli.Command{
		Name:  "route",
		Usage: "Print a route's timetable and the line drawn through it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "route number",
				Required: true,
			},
		},
		Action: func(c *cli.Context) error {
			if _, err := setup(c); err != nil {
				return err
			}

			route, err := dataaggregator.Lookup[*routetable.Route](query.Route{Identifier: c.String("id")})
			if err != nil {
				return err
			}

			path, err := dataaggregator.Lookup[*geometry.Path](query.RoutePath{Route: route, Context: c.Context})
			if err != nil {
				return err
			}

			pretty.Println(route.Stops)
			fmt.Printf("Path: %d points (%s)\n", len(path.Points), path.Source)

			return nil
		},
	}
}
