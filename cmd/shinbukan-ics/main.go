package main

import "shinbukan-ics/internal/cli"

func main() {
	cli.Execute()
}
