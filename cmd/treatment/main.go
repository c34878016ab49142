package main

import (
	"github.com/glowcare/clinic/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.NewTreatmentApp()
	if err != nil {
		logrus.Fatalf("Failed to initialize treatment service: %v", err)
	}

	app.Run()
}
