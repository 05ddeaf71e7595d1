package main

import (
	"github.com/dvloznov/commerce-pipeline/internal/cli"
)

func main() {
	cli.Execute()
}
