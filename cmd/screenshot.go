package cmd

import "github.com/spf13/cobra"

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Capture the primary display",
	Long: `Capture the full primary display as PNG without injecting any input.

Examples:
  sapgui-cli screenshot --out screen.png
  sapgui-cli screenshot --out screen.png --grid`,
	RunE: runScreenshot,
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
	addScreenshotFlags(screenshotCmd)
	_ = screenshotCmd.MarkFlagRequired("out")
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	ctrl, err := newController()
	if err != nil {
		return err
	}

	shot, err := ctrl.Screenshot()
	if err != nil {
		return err
	}

	out, grid := getScreenshotFlags(cmd)
	return finishAction(ActionResult{Status: "success", Action: "screenshot"}, shot, out, grid, ctrl.Scale())
}
