package main

import "github.com/kamahir0/custom-explorer/cmd/custom-explorer-cli/cmd"

func main() {
	cmd.Execute()
}
