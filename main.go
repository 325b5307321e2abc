package main

import "github.com/hourglass-cli/hourglass/cmd"

func main() {
	cmd.Execute()
}
