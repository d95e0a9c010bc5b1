package main

import (
	"log"

	"github.com/mealtrack/food-api/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
