package main

import (
	"github.com/glowcare/clinic/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.NewAppointmentApp()
	if err != nil {
		logrus.Fatalf("Failed to initialize appointment service: %v", err)
	}

	app.Run()
}
