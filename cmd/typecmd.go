package cmd

import "github.com/spf13/cobra"

var typeCmd = &cobra.Command{
	Use:   "type <text>",
	Short: "Type literal text at the current cursor position",
	Long: `Activate the SAP GUI session window and type the given text as keyboard
events. Characters are injected verbatim: there is no escaping and no
special-key token syntax. Use quotes to include spaces.

Example:
  sapgui-cli type "4711"`,
	Args: cobra.ExactArgs(1),
	RunE: runType,
}

func init() {
	rootCmd.AddCommand(typeCmd)
	addScreenshotFlags(typeCmd)
}

func runType(cmd *cobra.Command, args []string) error {
	ctrl, err := newController()
	if err != nil {
		return err
	}

	shot, err := ctrl.TypeText(args[0])
	if err != nil {
		return err
	}

	out, grid := getScreenshotFlags(cmd)
	return finishAction(ActionResult{Status: "success", Action: "type"}, shot, out, grid, ctrl.Scale())
}
