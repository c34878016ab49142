package main

import (
	"github.com/glowcare/clinic/cmd/bootstrap"

	"github.com/sirupsen/logrus"
)

func main() {
	app, err := bootstrap.NewPaymentApp()
	if err != nil {
		logrus.Fatalf("Failed to initialize payment service: %v", err)
	}

	app.Run()
}
