package cmd

import (
	"encoding/json"
	"fmt"

	"mkxorg/internal/xorg"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List installed X drivers",
	Long:  `List the driver modules installed in the X driver directory.`,
	Args:  cobra.NoArgs,
	RunE:  runDrivers,
}

func init() {
	rootCmd.AddCommand(driversCmd)
}

func runDrivers(cmd *cobra.Command, args []string) error {
	inv := xorg.Inventory{
		Fs:     fsys,
		Dir:    viper.GetString("driver_dir"),
		Suffix: viper.GetString("driver_suffix"),
	}

	names, err := inv.List()
	if err != nil {
		return fmt.Errorf("failed to list drivers: %w", err)
	}

	if viper.GetBool("json") {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(struct {
			Drivers []string `json:"drivers"`
		}{Drivers: names})
	}

	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}
