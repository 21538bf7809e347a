package main

import "github.com/Vipaswi/Compiler/cmd"

var version = "v0.3.1"

func main() {
	cmd.Execute(version)
}
