package main

import (
	"locations-sqlgen/internal/config"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries state shared by the subcommands once PersistentPreRunE has loaded it
type app struct {
	fs        afero.Fs
	v         *viper.Viper
	configDir string
	cfg       *config.Config
}

func main() {
	if err := newRootCmd(afero.NewOsFs()).Execute(); err != nil {
		log.Fatal().Err(err).Msg("locsql failed")
	}
}

func newRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, v: viper.New()}

	root := &cobra.Command{
		Use:           "locsql",
		Short:         "Generate SQL scripts from the locations CSV",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfigWith(a.v, a.configDir)
			if err != nil {
				return err
			}
			a.cfg = cfg
			config.InitLoggerTo(cmd.ErrOrStderr(), cfg.Log.Level)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configDir, "config-dir", "configs", "directory searched for locsql.yaml")
	flags.String("input", "locations.csv", "path to the locations CSV")
	flags.String("output-dir", "scripts", "directory for generated scripts")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = a.v.BindPFlag("input.path", flags.Lookup("input"))
	_ = a.v.BindPFlag("output.dir", flags.Lookup("output-dir"))
	_ = a.v.BindPFlag("log.level", flags.Lookup("log-level"))

	root.AddCommand(newInsertsCmd(a), newPrefixesCmd(a))
	return root
}
