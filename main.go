package main

import "github.com/maxmcd/calc/internal/command"

func main() {
	command.RunCLI()
}
