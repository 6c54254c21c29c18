package main

import "github.com/andrescamacho/spacerush-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
