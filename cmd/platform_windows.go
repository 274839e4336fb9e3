//go:build windows

package cmd

import _ "github.com/saptools/sapgui-cli/internal/platform/win"
