package main

import "github.com/aceteam-ai/fiolog/cmd"

func main() {
	cmd.Execute()
}
