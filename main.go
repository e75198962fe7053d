package main

import "github.com/Bl4ckspell7/asusctl-gui/cmd"

func main() {
	cmd.Execute()
}
