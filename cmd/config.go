package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nrcx/pomo/internal/config"
	"github.com/nrcx/pomo/internal/domain"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  `Print the interval lengths, notification settings and the config file path.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}

		fmt.Println()
		fmt.Println("  Current configuration:")
		fmt.Println()
		fmt.Println("  Intervals (fixed):")
		for _, m := range []domain.Mode{domain.ModeWork, domain.ModeShortBreak, domain.ModeLongBreak} {
			fmt.Printf("    %-12s %dm\n", m.Label()+":", m.Seconds()/60)
		}
		fmt.Printf("    Long break after every %d work sessions\n", domain.SessionsBeforeLong)
		fmt.Println()

		notifStatus := "off"
		if appConfig.Notifications.Enabled {
			notifStatus = "on"
			if appConfig.Notifications.Sound {
				notifStatus = "on (with sound)"
			}
		}
		fmt.Printf("  Notifications: %s\n", notifStatus)
		fmt.Println()
		fmt.Printf("  Theme and notification settings: %s\n", configPath)
		fmt.Println()
		return nil
	},
}
