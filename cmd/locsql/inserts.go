package main

import (
	"locations-sqlgen/internal/repository"
	"locations-sqlgen/internal/service"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newInsertsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inserts",
		Short: "Write batched INSERT statements for the locations table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			source := repository.NewLocationFile(a.fs, a.cfg.Input.Path)
			store := repository.NewScriptStore(a.fs, a.cfg.Output.Dir)
			svc := service.NewInsertBatchService(source, store, a.cfg.Inserts.BatchSize, a.cfg.Inserts.FilePrefix)

			result, err := svc.Generate(cmd.Context())
			if err != nil {
				return err
			}

			log.Info().
				Str("input", source.Path()).
				Int("rows", result.Rows).
				Int("skipped", result.Skipped).
				Int("statements", result.Statements).
				Int("files", len(result.Files)).
				Msg("insert batches generated")
			return nil
		},
	}

	cmd.Flags().Int("batch-size", 500, "maximum statements per batch file")
	_ = a.v.BindPFlag("inserts.batch_size", cmd.Flags().Lookup("batch-size"))
	return cmd
}
