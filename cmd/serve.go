package cmd

import (
	"github.com/spf13/cobra"

	"github.com/saptools/sapgui-cli/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the SAP GUI tools",
	Long: `Start a Model Context Protocol (MCP) server exposing the SAP GUI automation
tools: launch_transaction, sap_click, sap_move_mouse, sap_type, sap_scroll,
end_transaction and save_last_screenshot.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  sapgui-cli serve
  sapgui-cli serve --transport streamable-http --port 8080
  sapgui-cli serve --grid`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "stdio", "Transport: stdio, streamable-http")
	serveCmd.Flags().Int("port", 8080, "HTTP port for streamable-http transport")
	serveCmd.Flags().Bool("grid", false, "Overlay a coordinate grid on returned screenshots")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	grid, _ := cmd.Flags().GetBool("grid")

	ctrl, err := newController()
	if err != nil {
		return err
	}

	srvCfg := server.Config{
		Transport: transport,
		Port:      port,
		Grid:      grid,
	}
	srv := server.New(ctrl, logger, srvCfg)

	// A session left behind by a disconnecting client is torn down with
	// the server.
	defer srv.Shutdown()

	return srv.Serve(srvCfg)
}
