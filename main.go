package main

import (
	"embed"
	"io/fs"

	"go-picview/cmd/cli"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	frontend, err := fs.Sub(assets, "frontend/dist")
	if err != nil {
		panic(err)
	}
	cli.Execute(frontend)
}
