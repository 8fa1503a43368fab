package cli

import (
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the configuration shared by all commands of one root command.
type app struct {
	v *viper.Viper
}

// NewRootCmd creates the folder command with all of its sub-commands.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}
	a.v.SetEnvPrefix("FOLDER")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "folder",
		Short: "fold values into a single result",

		// SilenceUsage is an option to silence usage when an error occurs.
		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// flags are merged into cmd.Flags() by now, including the persistent ones
			if err := a.v.BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if a.v.GetBool("debug") {
				tracer().SetTraceLevel(tracing.LevelDebug)
			}
			return nil
		},
	}
	root.PersistentFlags().Bool("debug", false, "trace folding at debug level")
	root.PersistentFlags().Bool("no-color", false, "disable colored output")

	root.AddCommand(newSumCmd(a), newMaxCmd(a), newJoinCmd(a))
	return root
}

// Execute runs the folder command and exits with status 1 on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
