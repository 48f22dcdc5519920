// Package main is the entry point of the expense tracker API server.
// It sets up and starts the server by calling initialization functions from the internal package.
package main

import (
	"expense-tracker/internal"
)

func main() {
	internal.Init()
}
