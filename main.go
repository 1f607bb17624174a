package main

import (
	"os"

	"github.com/Durgaprasad2408/BrainCell-sub002/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
