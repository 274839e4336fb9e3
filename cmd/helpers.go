package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/saptools/sapgui-cli/internal/controller"
	"github.com/saptools/sapgui-cli/internal/imaging"
	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/platform"
)

// ActionResult is the YAML output of an action command.
type ActionResult struct {
	Status      string `yaml:"status"`
	Action      string `yaml:"action"`
	Message     string `yaml:"message,omitempty"`
	Session     string `yaml:"session,omitempty"`
	Transaction string `yaml:"transaction,omitempty"`
	Screenshot  string `yaml:"screenshot,omitempty"`
}

// newController builds a Controller on the current platform backend.
func newController() (*controller.Controller, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, err
	}
	return controller.New(provider, cfg.SAP, logger), nil
}

// printResult writes the YAML result block to stdout.
func printResult(result ActionResult) error {
	b, err := yaml.Marshal(result)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(b)
	return err
}

// finishAction optionally writes the screenshot to out (with a coordinate
// grid when grid is set) and prints the result.
func finishAction(result ActionResult, shot *model.Screenshot, out string, grid bool, scale float64) error {
	if shot != nil && out != "" {
		if grid {
			annotated, err := imaging.DrawGrid(shot.PNG, imaging.DefaultGridSpacing, scale)
			if err != nil {
				return fmt.Errorf("failed to annotate screenshot: %w", err)
			}
			shot = &model.Screenshot{PNG: annotated}
		}
		if err := shot.Save(out); err != nil {
			return err
		}
		result.Screenshot = out
	}
	return printResult(result)
}

// addScreenshotFlags registers the flags shared by screenshot-producing
// commands.
func addScreenshotFlags(cmd *cobra.Command) {
	cmd.Flags().String("out", "", "Write the resulting screenshot to this file")
	cmd.Flags().Bool("grid", false, "Overlay a coordinate grid on the screenshot")
}

// getScreenshotFlags reads the flags registered by addScreenshotFlags.
func getScreenshotFlags(cmd *cobra.Command) (string, bool) {
	out, _ := cmd.Flags().GetString("out")
	grid, _ := cmd.Flags().GetBool("grid")
	return out, grid
}
