package main

import (
	"fmt"
	"os"

	"github.com/kobzarvs/padedit/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		fmt.Fprintln(os.Stderr, "padedit:", err)
		os.Exit(1)
	}
}
