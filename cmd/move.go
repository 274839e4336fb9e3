package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "Move the mouse cursor to display coordinates",
	Long: `Activate the SAP GUI session window and move the mouse cursor to the given
logical display coordinates without clicking.

Example:
  sapgui-cli move --x 640 --y 360`,
	RunE: runMove,
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().Int("x", 0, "Horizontal display coordinate")
	moveCmd.Flags().Int("y", 0, "Vertical display coordinate")
	addScreenshotFlags(moveCmd)
}

func runMove(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("x") || !cmd.Flags().Changed("y") {
		return fmt.Errorf("both --x and --y are required")
	}
	x, _ := cmd.Flags().GetInt("x")
	y, _ := cmd.Flags().GetInt("y")

	ctrl, err := newController()
	if err != nil {
		return err
	}

	shot, err := ctrl.MoveMouse(x, y)
	if err != nil {
		return err
	}

	out, grid := getScreenshotFlags(cmd)
	return finishAction(ActionResult{Status: "success", Action: "move"}, shot, out, grid, ctrl.Scale())
}
