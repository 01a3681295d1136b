package main

import (
	"log"

	"github.com/pattyalex/brand-journey-tracker-sub002/pkg/commands"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		log.Fatalf("error during command execution: %v", err)
	}
}
