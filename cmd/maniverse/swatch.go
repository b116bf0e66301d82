package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kerbaras/maniverse/pkg/data"
	"github.com/kerbaras/maniverse/pkg/integrations"
	"github.com/kerbaras/maniverse/pkg/services"
)

var swatchOut string

var swatchCmd = &cobra.Command{
	Use:   "swatch [color-id]",
	Short: "Render a color swatch to a PNG file",
	Long:  "Render the 400x300 swatch for a catalog color, including its glitter or pearl texture.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		color, ok := data.ColorByID(args[0])
		if !ok {
			return fmt.Errorf("%w: %q (see 'maniverse colors')", services.ErrUnknownColor, args[0])
		}

		f, err := os.Create(swatchOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", swatchOut, err)
		}
		defer f.Close()

		if err := integrations.EncodeSwatchPNG(f, color); err != nil {
			return err
		}

		cliLogger(cmd).Debug("swatch written", "color", color.ID, "path", swatchOut)
		fmt.Fprintf(cmd.OutOrStdout(), "🎨 %s swatch written to %s\n", color.Name, swatchOut)
		return nil
	},
}

func init() {
	swatchCmd.Flags().StringVarP(&swatchOut, "out", "o", "", "PNG file to write")
	_ = swatchCmd.MarkFlagRequired("out")
}
