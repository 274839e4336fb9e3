// Package server exposes the SAP GUI controller as MCP tools over stdio or
// streamable HTTP.
package server

import (
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/saptools/sapgui-cli/internal/controller"
	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/platform"
	"github.com/saptools/sapgui-cli/internal/version"
)

// Controller is the session automation surface the server drives.
type Controller interface {
	LaunchTransaction(transaction string) (*controller.Session, *model.Screenshot, error)
	Click(x, y int) (*model.Screenshot, error)
	MoveMouse(x, y int) (*model.Screenshot, error)
	TypeText(text string) (*model.Screenshot, error)
	Scroll(dir platform.ScrollDirection) (*model.Screenshot, error)
	EndSession(sess *controller.Session)
	Scale() float64
}

// Config holds MCP server configuration.
type Config struct {
	Transport string // "stdio" or "streamable-http"
	Port      int
	Grid      bool // overlay a coordinate grid on returned screenshots
}

// Server wires the controller into an MCP tool surface. Tool invocations are
// serialized: the controller provides no internal mutual exclusion.
type Server struct {
	ctrl Controller
	log  *zap.Logger
	grid bool
	mcp  *mcpserver.MCPServer

	mu       sync.Mutex
	session  *controller.Session
	lastShot *model.Screenshot
}

// New creates a server with all SAP GUI tools registered.
func New(ctrl Controller, log *zap.Logger, cfg Config) *Server {
	s := &Server{
		ctrl: ctrl,
		log:  log,
		grid: cfg.Grid,
	}
	s.mcp = mcpserver.NewMCPServer("sapgui-cli", version.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server on the configured transport. It blocks until
// the transport shuts down.
func (s *Server) Serve(cfg Config) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

// Shutdown best-effort terminates any session started through this server.
func (s *Server) Shutdown() {
	s.mu.Lock()
	sess := s.session
	s.session = nil
	s.mu.Unlock()
	if sess != nil {
		s.ctrl.EndSession(sess)
	}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("launch_transaction",
			mcp.WithDescription("Launch a SAP transaction code and return a screenshot of the resulting screen"),
			mcp.WithString("transaction", mcp.Description("SAP transaction code to launch (e.g. VA01, ME21N, MM03)"), mcp.Required()),
		),
		s.handleLaunch,
	)

	s.mcp.AddTool(
		mcp.NewTool("sap_click",
			mcp.WithDescription("Click at logical display coordinates in the SAP GUI window and return a screenshot"),
			mcp.WithNumber("x", mcp.Description("Horizontal pixel coordinate where the click should occur"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Vertical pixel coordinate where the click should occur"), mcp.Required()),
		),
		s.handleClick,
	)

	s.mcp.AddTool(
		mcp.NewTool("sap_move_mouse",
			mcp.WithDescription("Move the mouse cursor to logical display coordinates and return a screenshot"),
			mcp.WithNumber("x", mcp.Description("Horizontal pixel coordinate to move the cursor to"), mcp.Required()),
			mcp.WithNumber("y", mcp.Description("Vertical pixel coordinate to move the cursor to"), mcp.Required()),
		),
		s.handleMoveMouse,
	)

	s.mcp.AddTool(
		mcp.NewTool("sap_type",
			mcp.WithDescription("Type literal text at the current cursor position and return a screenshot. Characters are sent verbatim; there is no special-key syntax."),
			mcp.WithString("text", mcp.Description("Text to enter at the current cursor position"), mcp.Required()),
		),
		s.handleType,
	)

	s.mcp.AddTool(
		mcp.NewTool("sap_scroll",
			mcp.WithDescription("Scroll the SAP GUI screen and return a screenshot. Direction uses content-moves semantics: 'up' moves content down, 'down' moves content up."),
			mcp.WithString("direction", mcp.Description("Scroll direction: up or down"), mcp.Required()),
		),
		s.handleScroll,
	)

	s.mcp.AddTool(
		mcp.NewTool("end_transaction",
			mcp.WithDescription("End the current SAP session and close the GUI"),
		),
		s.handleEnd,
	)

	s.mcp.AddTool(
		mcp.NewTool("save_last_screenshot",
			mcp.WithDescription("Save the most recently captured screenshot to a file"),
			mcp.WithString("filename", mcp.Description("Path where the PNG screenshot will be written"), mcp.Required()),
		),
		s.handleSaveLast,
	)
}
