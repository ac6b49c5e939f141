package main

import (
	"github.com/rbenhaddou/squad-roster/internal/cli"
)

func main() {
	cli.Execute()
}
