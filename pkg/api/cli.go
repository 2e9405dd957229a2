package api

import (
	"github.com/travigo/eventcoach/pkg/config"
	"github.com/travigo/eventcoach/pkg/dataaggregator/global"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Provides the booking lookup website and API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load(c.String("config"))
					if err != nil {
						return err
					}

					global.Setup(c.Context, cfg)

					return SetupServer(c.Context, c.String("listen"), cfg)
				},
			},
		},
	}
}
