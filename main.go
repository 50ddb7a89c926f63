package main

import (
	"github.com/KonsKons26/dna-tools/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
