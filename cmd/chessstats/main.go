package main

import "github.com/alexzavalny/chessstats/internal/cli"

func main() {
	cli.Execute()
}
