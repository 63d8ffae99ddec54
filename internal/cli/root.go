package cli

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gridcal/config"
	"gridcal/internal/calendar"
	"gridcal/internal/i18n"
	"gridcal/internal/logging"
	"gridcal/internal/ui"
)

var (
	flagYear   int
	flagMonth  int
	flagMonday bool
)

// clock is swapped in tests
var clock calendar.Clock = calendar.SystemClock{}

var rootCmd = &cobra.Command{
	Use:   "gridcal",
	Short: "A month calendar in your terminal",
	Long:  "gridcal - browse months and jot down events from your terminal",
	Run: func(cmd *cobra.Command, args []string) {
		runTUI()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagMonday, "monday", false, "Start weeks on Monday")
	rootCmd.Flags().IntVar(&flagYear, "year", 0, "Initial year (default: current year)")
	rootCmd.Flags().IntVar(&flagMonth, "month", 0, "Initial month 1-12 (default: current month)")

	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// initialYearMonth applies --year/--month over today's month
func initialYearMonth(year, month int) calendar.YearMonth {
	ym := calendar.YearMonthOf(clock.Now())
	if year != 0 {
		ym.Year = year
	}
	if month != 0 {
		ym.Month = month
	}
	return ym
}

// builderFor resolves the first weekday from config and the --monday flag
func builderFor(cfg config.Config) (calendar.Builder, error) {
	wd, err := cfg.Weekday()
	if err != nil {
		return calendar.Builder{}, err
	}
	if flagMonday {
		wd = time.Monday
	}
	return calendar.Builder{FirstWeekday: wd, Clock: clock}, nil
}

func runTUI() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		logging.Discard()
	} else {
		closer, err := logging.Setup(cfg.LogLevel, logPath)
		if err != nil {
			// Non-fatal: the calendar works without a log file
			fmt.Printf("Warning: logging disabled: %v\n", err)
		}
		defer closer.Close()
	}

	if err := i18n.Init(cfg.Language); err != nil {
		// Non-fatal: labels fall back to message IDs
		fmt.Printf("Warning: i18n initialization failed: %v\n", err)
	}

	builder, err := builderFor(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := ui.SetTheme(cfg.Theme); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ym := initialYearMonth(flagYear, flagMonth)
	log.WithFields(log.Fields{
		"month":    ym.String(),
		"language": i18n.CurrentLanguage(),
	}).Info("starting calendar")

	app := ui.NewCalendarApp(ym, ui.ViewOptions{
		FirstWeekday: builder.FirstWeekday,
		YearRadius:   cfg.YearRange,
		Clock:        clock,
		Events:       calendar.NewStore(clock),
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running calendar: %v\n", err)
		os.Exit(1)
	}
}
