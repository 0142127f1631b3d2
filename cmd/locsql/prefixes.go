package main

import (
	"fmt"

	"locations-sqlgen/internal/repository"
	"locations-sqlgen/internal/service"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newPrefixesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefixes",
		Short: "Write the postcode prefix lookup table script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source := repository.NewLocationFile(a.fs, a.cfg.Input.Path)
			store := repository.NewScriptStore(a.fs, a.cfg.Output.Dir)
			svc := service.NewPrefixService(source, store, a.cfg.Prefixes.Length, a.cfg.Prefixes.File)

			result, err := svc.Generate(cmd.Context())
			if err != nil {
				return err
			}

			log.Info().
				Str("input", source.Path()).
				Int("rows", result.Rows).
				Int("skipped", result.Skipped).
				Int("prefixes", result.Prefixes).
				Msg("prefix script generated")

			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s\n", a.cfg.Prefixes.File)
			return nil
		},
	}

	cmd.Flags().Int("prefix-length", 4, "number of postcode characters per prefix")
	_ = a.v.BindPFlag("prefixes.length", cmd.Flags().Lookup("prefix-length"))
	return cmd
}
