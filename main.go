package main

import "github.com/abdosharaf9/Simple-Compiler/cmd"

func main() {
	cmd.Execute()
}
