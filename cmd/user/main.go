package main

import (
	"github.com/glowcare/clinic/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.NewUserApp()
	if err != nil {
		logrus.Fatalf("Failed to initialize user service: %v", err)
	}

	app.Run()
}
