package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colormaestro/internal/mood"
)

func newMoodsCmd(a *app) *cobra.Command {
	var (
		moodsFile string
		dump      bool
	)

	cmd := &cobra.Command{
		Use:   "moods",
		Short: "List the mood profiles used by the mood input",
		Long: `List the mood profiles used by the mood input plugin.

Each mood bounds the hue, saturation and value of the sampled base colour.
Hues are shown in degrees; saturation and value in [0,1].

Use --dump to print the table as YAML. The output can be edited and passed
back with --moods-file (or COLORMAESTRO_MOODS_FILE).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table, err := loadMoods(moodsFile)
			if err != nil {
				return err
			}

			if dump {
				data, err := table.Marshal()
				if err != nil {
					return fmt.Errorf("failed to encode mood table: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			tbl := NewTable([]string{"MOOD", "HUES", "SATURATION", "VALUE"})
			for _, name := range table.Names() {
				p, err := table.Lookup(name)
				if err != nil {
					return err
				}
				hues := make([]string, len(p.Hues))
				for i, h := range p.Hues {
					hues[i] = fmt.Sprintf("%.0f-%.0f°", h.Min*360, h.Max*360)
				}
				tbl.AddRow([]string{name, strings.Join(hues, ", "), formatRange(p.Saturation), formatRange(p.Value)})
			}
			fmt.Fprint(cmd.OutOrStdout(), tbl.Render())
			return nil
		},
	}

	cmd.Flags().StringVar(&moodsFile, "moods-file", a.cfg.MoodsFile, "YAML file overriding the built-in mood table")
	cmd.Flags().BoolVar(&dump, "dump", false, "Print the mood table as YAML")
	return cmd
}

func formatRange(r mood.Range) string {
	return fmt.Sprintf("%.2f-%.2f", r.Min, r.Max)
}
