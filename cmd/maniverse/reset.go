package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Forget the saved shape and color",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := cliLogger(cmd)

		store, closer, err := openStore(logger)
		if err != nil {
			return err
		}
		defer closer.Close()

		store.Reset()
		logger.Debug("selection reset")
		fmt.Fprintln(cmd.OutOrStdout(), "🧼 Selection cleared. Start over anytime.")
		return nil
	},
}
