package main

import "github.com/mouse-blink/au3deps/cmd"

func main() {
	cmd.Execute()
}
