package main

import (
	"ordis.dev/itembuilder/cmd/app"
)

func main() {
	app.Run()
}
