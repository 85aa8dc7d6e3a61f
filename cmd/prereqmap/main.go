package main

import "prereqmap/cmd/prereqmap/commands"

func main() {
	commands.Execute()
}
