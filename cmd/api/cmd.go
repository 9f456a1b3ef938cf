package main

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/grupo1/reclamos-backend/internal/config"
	"github.com/grupo1/reclamos-backend/internal/store"
)

func run(ctx context.Context, args []string) error {
	var envFile string

	root := &cli.Command{
		Name:  "reclamos",
		Usage: "Complaint dashboard backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "env-file",
				Usage:       "dotenv file loaded before reading configuration",
				Value:       ".env",
				Sources:     cli.EnvVars("ENVFILE"),
				Destination: &envFile,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := config.LoadEnvFile(envFile); err != nil {
				return ctx, fmt.Errorf("load env file %s: %w", envFile, err)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdSeed(),
			cmdPing(),
		},
	}
	return root.Run(ctx, args)
}

func cmdServe() *cli.Command {
	var addr string

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Usage:       "listen address, overrides ADDR",
				Destination: &addr,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			if addr != "" {
				a.cfg.Addr = addr
			}
			return a.serve(ctx)
		},
	}
}

func cmdSeed() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Insert the sample categories, customers, employees and complaints",
		Action: func(ctx context.Context, c *cli.Command) error {
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.admin.Seed(a.ctx(ctx), store.SampleData())
			if err != nil {
				return err
			}
			fmt.Fprintf(c.Root().Writer, "inserted %d categories, %d customers, %d employees, %d complaints\n",
				result.Categories, result.Customers, result.Employees, result.Complaints)
			return nil
		},
	}
}

func cmdPing() *cli.Command {
	return &cli.Command{
		Name:  "ping",
		Usage: "Check the data source connection and count complaints",
		Action: func(ctx context.Context, c *cli.Command) error {
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()

			result, err := a.admin.Ping(a.ctx(ctx))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.Root().Writer, "%s ok at %s, %d complaints\n",
				result.DataSource, result.Now.Format(time.RFC3339), result.Complaints)
			return nil
		},
	}
}
