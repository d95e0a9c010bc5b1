package main

import (
	"github.com/mealtrack/food-api/pkg/cli"
)

func main() {
	cli.Execute()
}
