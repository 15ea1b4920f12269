package main

import "github.com/mouse-blink/doclint/cmd"

func main() {
	cmd.Execute()
}
