package main

import (
	"github.com/rickhohler/gzipkit/cmd/gzipkit/app"
)

func main() {
	app.Execute()
}
