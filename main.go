package main

import "github.com/smerlos/convoset/commands"

func main() {
	commands.Execute()
}
