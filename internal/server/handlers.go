package server

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/saptools/sapgui-cli/internal/controller"
	"github.com/saptools/sapgui-cli/internal/imaging"
	"github.com/saptools/sapgui-cli/internal/model"
	"github.com/saptools/sapgui-cli/internal/platform"
)

// toolResult is the YAML status block attached to every tool response.
type toolResult struct {
	Status      string `yaml:"status"`
	Message     string `yaml:"message,omitempty"`
	Session     string `yaml:"session,omitempty"`
	Transaction string `yaml:"transaction,omitempty"`
}

func resultToText(result toolResult) string {
	b, err := yaml.Marshal(result)
	if err != nil {
		return fmt.Sprintf("status: %s\nmessage: %s", result.Status, result.Message)
	}
	return string(b)
}

// screenshotResult retains the artifact for save_last_screenshot and builds
// the MCP response: YAML status text plus the PNG as inline image content.
func (s *Server) screenshotResult(result toolResult, shot *model.Screenshot) *mcp.CallToolResult {
	if shot == nil {
		return mcp.NewToolResultText(resultToText(result))
	}

	if s.grid {
		annotated, err := imaging.DrawGrid(shot.PNG, imaging.DefaultGridSpacing, s.ctrl.Scale())
		if err != nil {
			s.log.Warn("grid annotation failed", zap.Error(err))
		} else {
			shot = &model.Screenshot{PNG: annotated}
		}
	}

	s.mu.Lock()
	s.lastShot = shot
	s.mu.Unlock()

	return mcp.NewToolResultImage(resultToText(result), shot.Base64(), "image/png")
}

// errorResult maps controller errors onto the transport contract: transient
// not-ready conditions get a retry hint, hard errors pass through verbatim.
func (s *Server) errorResult(action string, err error) *mcp.CallToolResult {
	result := toolResult{Status: "error", Message: err.Error()}
	if controller.IsNotReady(err) {
		result.Message = "SAP GUI is not ready yet, try again: " + err.Error()
		s.log.Debug("action deferred, application not ready", zap.String("action", action))
	} else {
		s.log.Error("action failed", zap.String("action", action), zap.Error(err))
	}
	return mcp.NewToolResultError(resultToText(result))
}

func (s *Server) handleLaunch(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	transaction := stringParam(params, "transaction", "")
	if transaction == "" {
		return mcp.NewToolResultError(resultToText(toolResult{
			Status:  "error",
			Message: "transaction is required",
		})), nil
	}

	s.log.Info("launching transaction", zap.String("transaction", transaction))
	sess, shot, err := s.ctrl.LaunchTransaction(transaction)
	if err != nil {
		return s.errorResult("launch_transaction", err), nil
	}

	s.mu.Lock()
	s.session = sess
	s.mu.Unlock()

	return s.screenshotResult(toolResult{
		Status:      "success",
		Session:     sess.ID,
		Transaction: transaction,
	}, shot), nil
}

func (s *Server) handleClick(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	if !hasParam(params, "x") || !hasParam(params, "y") {
		return mcp.NewToolResultError(resultToText(toolResult{
			Status:  "error",
			Message: "x and y coordinates are required",
		})), nil
	}
	x := intParam(params, "x", 0)
	y := intParam(params, "y", 0)

	shot, err := s.ctrl.Click(x, y)
	if err != nil {
		return s.errorResult("sap_click", err), nil
	}
	return s.screenshotResult(toolResult{Status: "success"}, shot), nil
}

func (s *Server) handleMoveMouse(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	if !hasParam(params, "x") || !hasParam(params, "y") {
		return mcp.NewToolResultError(resultToText(toolResult{
			Status:  "error",
			Message: "x and y coordinates are required",
		})), nil
	}
	x := intParam(params, "x", 0)
	y := intParam(params, "y", 0)

	shot, err := s.ctrl.MoveMouse(x, y)
	if err != nil {
		return s.errorResult("sap_move_mouse", err), nil
	}
	return s.screenshotResult(toolResult{Status: "success"}, shot), nil
}

func (s *Server) handleType(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	text := stringParam(params, "text", "")
	if text == "" {
		return mcp.NewToolResultError(resultToText(toolResult{
			Status:  "error",
			Message: "text is required",
		})), nil
	}

	shot, err := s.ctrl.TypeText(text)
	if err != nil {
		return s.errorResult("sap_type", err), nil
	}
	return s.screenshotResult(toolResult{Status: "success"}, shot), nil
}

func (s *Server) handleScroll(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	dir, err := platform.ParseScrollDirection(stringParam(params, "direction", ""))
	if err != nil {
		return mcp.NewToolResultError(resultToText(toolResult{
			Status:  "error",
			Message: err.Error(),
		})), nil
	}

	shot, err := s.ctrl.Scroll(dir)
	if err != nil {
		return s.errorResult("sap_scroll", err), nil
	}
	return s.screenshotResult(toolResult{Status: "success"}, shot), nil
}

// handleEnd always reports success: session cleanup is best-effort by
// contract, and a failed kill of an already-dead process is not an error.
func (s *Server) handleEnd(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	sess := s.session
	s.session = nil
	s.mu.Unlock()

	s.ctrl.EndSession(sess)
	return mcp.NewToolResultText(resultToText(toolResult{Status: "success"})), nil
}

func (s *Server) handleSaveLast(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	filename := stringParam(params, "filename", "")
	if filename == "" {
		return mcp.NewToolResultError(resultToText(toolResult{
			Status:  "error",
			Message: "filename is required",
		})), nil
	}

	s.mu.Lock()
	shot := s.lastShot
	s.mu.Unlock()

	if shot == nil {
		return mcp.NewToolResultError(resultToText(toolResult{
			Status:  "error",
			Message: "no screenshot available",
		})), nil
	}
	if err := shot.Save(filename); err != nil {
		return mcp.NewToolResultError(resultToText(toolResult{
			Status:  "error",
			Message: err.Error(),
		})), nil
	}
	return mcp.NewToolResultText(resultToText(toolResult{
		Status:  "success",
		Message: fmt.Sprintf("screenshot saved to %s", filename),
	})), nil
}
