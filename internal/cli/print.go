package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gridcal/config"
	"gridcal/internal/calendar"
	"gridcal/internal/ui"
)

var printPlain bool

var printCmd = &cobra.Command{
	Use:     "print [YYYY-MM]",
	Aliases: []string{"p"},
	Short:   "Print a month grid",
	Long: `Print a month grid without starting the interactive calendar.

Examples:
  gridcal print
  gridcal print 2022-03
  gridcal print 2022-03 --monday --plain`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		ym := initialYearMonth(0, 0)
		if len(args) == 1 {
			ym, err = calendar.ParseYearMonth(args[0])
			if err != nil {
				return err
			}
		}

		builder, err := builderFor(cfg)
		if err != nil {
			return err
		}

		if err := ui.SetTheme(cfg.Theme); err != nil {
			return err
		}

		styled := !printPlain && isTerminal(cmd.OutOrStdout())
		_, err = fmt.Fprint(cmd.OutOrStdout(), ui.RenderMonth(builder, ym, styled))
		return err
	},
}

func init() {
	printCmd.Flags().BoolVar(&printPlain, "plain", false, "Disable colors")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
