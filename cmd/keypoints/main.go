package main

import (
	"log"

	"github.com/GriffinCanCode/keypoints/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
