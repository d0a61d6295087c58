package main

import "github.com/nrcx/pomo/cmd"

func main() {
	cmd.Execute()
}
