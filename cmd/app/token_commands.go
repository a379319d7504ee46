package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/allisson/tokengen/cmd/app/commands"
	"github.com/allisson/tokengen/internal/app"
	"github.com/allisson/tokengen/internal/config"
	tokenDomain "github.com/allisson/tokengen/internal/token/domain"
)

func getTokenCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "generate-token",
			Usage: "Generate a random token",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "length",
					Aliases: []string{"l"},
					Value:   tokenDomain.DefaultLength,
					Usage:   "Number of characters to keep (at most 88)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				tokenUseCase, err := container.TokenUseCase()
				if err != nil {
					return err
				}

				var length *int
				if cmd.IsSet("length") {
					value := int(cmd.Int("length"))
					length = &value
				}

				return commands.RunGenerateToken(
					ctx,
					tokenUseCase,
					container.Logger(),
					os.Stdout,
					length,
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "checksum",
			Usage: "Compute the code point checksum of a token",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "token",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Token to checksum",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				tokenUseCase, err := container.TokenUseCase()
				if err != nil {
					return err
				}

				return commands.RunChecksum(
					ctx,
					tokenUseCase,
					container.Logger(),
					os.Stdout,
					cmd.String("token"),
					cmd.String("format"),
				)
			},
		},
	}
}
