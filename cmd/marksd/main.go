package main

import (
	"log"

	"github.com/marksd/marks/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("marks failed to start: %v", err)
	}
}
