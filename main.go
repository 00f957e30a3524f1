package main

import (
	"github.com/watchask/watchask/cmd"
)

func main() {
	cmd.Execute()
}
