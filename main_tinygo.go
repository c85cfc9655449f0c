//go:build tinygo

package main

import (
	"github.com/antsy/Lifecounter/app"
	"github.com/antsy/Lifecounter/hal"
)

func main() {
	app.Run(hal.New())
}
