package cmd

import "github.com/spf13/cobra"

var launchCmd = &cobra.Command{
	Use:   "launch <transaction>",
	Short: "Launch a SAP transaction in a fresh session",
	Long: `Launch the SAP GUI with the given transaction code and return once the
session is up. Any pre-existing SAP GUI instances are terminated first, and a
multi-logon warning dialog appearing during startup is dismissed automatically.

Requires SAP_SYSTEM, SAP_CLIENT, SAP_USER and SAP_PASSWORD in the environment.

Examples:
  sapgui-cli launch VA01
  sapgui-cli launch ME21N --out initial.png --grid`,
	Args: cobra.ExactArgs(1),
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
	addScreenshotFlags(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	ctrl, err := newController()
	if err != nil {
		return err
	}

	sess, shot, err := ctrl.LaunchTransaction(args[0])
	if err != nil {
		return err
	}

	out, grid := getScreenshotFlags(cmd)
	return finishAction(ActionResult{
		Status:      "success",
		Action:      "launch",
		Session:     sess.ID,
		Transaction: sess.Transaction,
	}, shot, out, grid, ctrl.Scale())
}
