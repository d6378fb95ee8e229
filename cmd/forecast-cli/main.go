package main

import "weather-charts/internal/cli"

func main() {
	cli.Execute()
}
