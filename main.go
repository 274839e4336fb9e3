package main

import "github.com/saptools/sapgui-cli/cmd"

func main() {
	cmd.Execute()
}
