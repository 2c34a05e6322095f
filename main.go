package main

import (
	"log"

	"github.com/thiagokokada/gitbranches-go/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		log.Fatalf("gitbranches-go: %v", err)
	}
}
