package main

import (
	"seqmap/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
