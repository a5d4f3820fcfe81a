package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormaestro/internal/colour"
)

func newContrastCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contrast COLOR [COLOR...]",
		Short: "Report WCAG contrast ratios between colours",
		Long: `Report WCAG contrast ratios.

With one colour, the ratios against white and black text are shown. With two
or more colours, every pair is compared. AA requires a ratio of at least 4.5,
AAA at least 7.0.

Examples:
  colormaestro contrast '#3a86ff'
  colormaestro contrast '#3a86ff' '#ffffff' '#1a1b26'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			colours := make([]colour.RGB, len(args))
			for i, arg := range args {
				c, err := colour.ParseHex(arg)
				if err != nil {
					return err
				}
				colours[i] = c
			}
			a.logger.Debug("evaluating contrast", "colours", len(colours))

			w := cmd.OutOrStdout()
			if len(colours) == 1 {
				writeTextContrast(w, []colour.NamedColour{{Role: "colour", RGB: colours[0]}})
				return nil
			}

			tbl := NewTable([]string{"A", "B", "Ratio", "AA", "AAA"})
			for _, pair := range colour.CheckPalette(colour.NewPalette(colours)) {
				tbl.AddRow([]string{
					pair.A.Hex(),
					pair.B.Hex(),
					formatRatio(pair.Result.Ratio),
					passFail(pair.Result.PassesAA),
					passFail(pair.Result.PassesAAA),
				})
			}
			fmt.Fprint(w, tbl.Render())
			return nil
		},
	}
}
