package main

import "github.com/askeland/minesolve/cmd"

func main() {
	cmd.Execute()
}
