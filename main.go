package main

import "github.com/ridoystarlord/schemaviz/cmd"

func main() {
	cmd.Execute()
}
