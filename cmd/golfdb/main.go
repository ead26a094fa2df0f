package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	_ "time/tzdata"

	"github.com/spf13/cobra"

	"github.com/Badsnus/golf-stats/cmd/app"
	"github.com/Badsnus/golf-stats/internal/adapters/config"
	"github.com/Badsnus/golf-stats/internal/domain/dto"
	"github.com/Badsnus/golf-stats/internal/domain/entity"
)

const recentRoundsShown = 10

type options struct {
	init   bool
	force  bool
	sample bool
	show   bool
	config string
}

func (o options) touchesSchema() bool {
	return o.init || o.sample || o.force
}

func (o options) hasAction() bool {
	return o.init || o.sample || o.show
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "golfdb",
		Short:         "Initialize and manage the golf stats database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.touchesSchema() || opts.show {
				cfg, err := config.Load(opts.config)
				if err != nil {
					return err
				}
				a, err := app.New(cfg)
				if err != nil {
					return err
				}
				defer a.Close()

				if err = run(cmd.Context(), a, opts, cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			// --force alone recreates the schema and still prints the usage
			if !opts.hasAction() {
				return cmd.Help()
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.init, "init", false, "Create the schema (no sample data)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Drop and recreate the schema if it exists")
	cmd.Flags().BoolVar(&opts.sample, "sample", false, "Insert sample data into a freshly created schema")
	cmd.Flags().BoolVar(&opts.show, "show", false, "Print members and recent rounds as JSON")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "Path to the config file")

	return cmd
}

func run(ctx context.Context, a *app.App, opts options, out io.Writer) error {
	created := false
	if opts.touchesSchema() {
		var err error
		if created, err = a.Init(ctx, opts.force); err != nil {
			return err
		}
		if created {
			a.Logger.Infof("schema created (%s)", a.Config.Service.Database.Driver)
		} else {
			a.Logger.Info("schema already exists, use --force to recreate it")
		}
	}

	if opts.sample {
		if created {
			ids, err := a.Seed.Sample(ctx)
			if err != nil {
				return err
			}
			a.Logger.Debugf("sample ids: %+v", ids)
			fmt.Fprintln(out, "Inserted sample data.")
		} else {
			a.Logger.Warn("sample data skipped: the schema was not created by this run")
		}
	}

	if opts.show {
		return show(ctx, a, out)
	}
	return nil
}

type summary struct {
	Members      []entity.Member    `json:"members"`
	RecentRounds []dto.RoundListing `json:"recent_rounds"`
}

func show(ctx context.Context, a *app.App, out io.Writer) error {
	members, err := a.Members.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to list members: %w", err)
	}
	rounds, err := a.Rounds.Recent(ctx, recentRoundsShown)
	if err != nil {
		return fmt.Errorf("failed to list rounds: %w", err)
	}

	s := summary{
		Members:      members,
		RecentRounds: rounds,
	}
	if s.Members == nil {
		s.Members = []entity.Member{}
	}
	if s.RecentRounds == nil {
		s.RecentRounds = []dto.RoundListing{}
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
