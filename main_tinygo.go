//go:build tinygo

package main

import (
	"glint/app"
	"glint/hal"
)

func main() {
	app.RunWithConfig(hal.New(), app.Config{Animate: true})
}
