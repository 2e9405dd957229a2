package datacheck

import (
	"github.com/rs/zerolog/log"
	"github.com/travigo/eventcoach/pkg/config"
	"github.com/travigo/eventcoach/pkg/dataaggregator/global"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-check",
		Usage: "Check the bookings table and route timetables for problems",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return err
			}

			global.Setup(c.Context, cfg)

			report, err := Check(c.Context)
			if err != nil {
				return err
			}

			for _, problem := range report.Problems {
				event := log.Warn()
				if problem.Severity == SeverityError {
					event = log.Error()
				}

				event.Str("subject", problem.Subject).Msg(problem.Message)
			}

			log.Info().
				Int("bookings", report.Bookings).
				Strs("routes", report.Routes).
				Int("problems", len(report.Problems)).
				Msg("Data check complete")

			if report.HasErrors() {
				return cli.Exit("data check found errors", 1)
			}

			return nil
		},
	}
}
