package main

import "martianoff/fnkit/cmd/fngen/commands"

func main() {
	commands.Execute()
}
