package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saptools/sapgui-cli/internal/platform"
)

var scrollCmd = &cobra.Command{
	Use:   "scroll <up|down>",
	Short: "Scroll the SAP GUI screen",
	Long: `Activate the SAP GUI session window and scroll it one step. Directions use
content-moves semantics: "up" moves content down (earlier content comes into
view), "down" moves content up.

Example:
  sapgui-cli scroll down`,
	Args: cobra.ExactArgs(1),
	RunE: runScroll,
}

func init() {
	rootCmd.AddCommand(scrollCmd)
	addScreenshotFlags(scrollCmd)
}

func runScroll(cmd *cobra.Command, args []string) error {
	dir, err := platform.ParseScrollDirection(args[0])
	if err != nil {
		return err
	}

	ctrl, err := newController()
	if err != nil {
		return err
	}

	shot, err := ctrl.Scroll(dir)
	if err != nil {
		return err
	}

	out, grid := getScreenshotFlags(cmd)
	return finishAction(ActionResult{Status: "success", Action: "scroll"}, shot, out, grid, ctrl.Scale())
}
