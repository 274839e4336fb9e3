package cmd

import "github.com/spf13/cobra"

var endCmd = &cobra.Command{
	Use:   "end",
	Short: "End the SAP session",
	Long: `Forcibly terminate the SAP GUI. Cleanup is best-effort: the command
succeeds even when no instance was running or the kill failed, so a
subsequent launch always starts from a clean slate.`,
	RunE: runEnd,
}

func init() {
	rootCmd.AddCommand(endCmd)
}

func runEnd(cmd *cobra.Command, args []string) error {
	ctrl, err := newController()
	if err != nil {
		return err
	}

	ctrl.EndSession(nil)
	return printResult(ActionResult{Status: "success", Action: "end"})
}
