package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click at display coordinates in the SAP GUI window",
	Long: `Activate the SAP GUI session window and click at the given logical display
coordinates. The window is maximized before clicking, so coordinates are
relative to the full display.

Examples:
  sapgui-cli click --x 640 --y 360
  sapgui-cli click --x 120 --y 48 --out after-click.png`,
	RunE: runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	clickCmd.Flags().Int("x", 0, "Horizontal display coordinate")
	clickCmd.Flags().Int("y", 0, "Vertical display coordinate")
	addScreenshotFlags(clickCmd)
}

func runClick(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("x") || !cmd.Flags().Changed("y") {
		return fmt.Errorf("both --x and --y are required")
	}
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")

	ctrl, err := newController()
	if err != nil {
		return err
	}

	shot, err := ctrl.Click(x, y)
	if err != nil {
		return err
	}

	out, grid := getScreenshotFlags(cmd)
	return finishAction(ActionResult{Status: "success", Action: "click"}, shot, out, grid, ctrl.Scale())
}
