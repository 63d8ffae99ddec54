package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gridcal/config"
	"gridcal/internal/i18n"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show gridcal settings",
	Long:  `Print the effective configuration (defaults, config file and GRIDCAL_* environment).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}

		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", path, data)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Choose settings interactively and write the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		weekday, _, cancelled := RunSelector("First day of the week", []SelectorItem{
			{ID: "sunday", Label: "Sunday"},
			{ID: "monday", Label: "Monday"},
		})
		if cancelled {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		languages := make([]SelectorItem, 0, len(i18n.SupportedLanguages)+1)
		languages = append(languages, SelectorItem{ID: "", Label: "Auto-detect"})
		for _, code := range i18n.SupportedLanguages {
			languages = append(languages, SelectorItem{ID: code, Label: languageNames[code]})
		}
		language, _, cancelled := RunSelector("Language", languages)
		if cancelled {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		cfg.FirstWeekday = weekday
		cfg.Language = language
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}

		path, _ := config.GetConfigPath()
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved %s\n", path)
		return nil
	},
}

var languageNames = map[string]string{
	"en": "English",
	"de": "Deutsch",
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
