package main

import (
	"takeout/cmd"

	"github.com/labstack/gommon/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatalf("takeout: %v", err)
	}
}
