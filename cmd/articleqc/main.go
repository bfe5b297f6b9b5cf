// Package main provides the articleqc command-line tool for cleaning scraped
// articles and reporting on their quality.
package main

import (
	"os"
)

func main() {
	if err := newApp(os.Stderr).execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}
