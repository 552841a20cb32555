package main

import "github.com/masmgr/changenotes/cmd"

func main() {
	cmd.Run()
}
