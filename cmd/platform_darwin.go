//go:build darwin

package cmd

import _ "github.com/saptools/sapgui-cli/internal/platform/mac"
