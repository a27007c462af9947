package main

import "github.com/Tiliavir/latecalc/cmd"

func main() {
	cmd.Execute()
}
