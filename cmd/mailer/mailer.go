// Package main is the entry point of the worker that sends the confirmation mails.
package main

import (
	"expense-tracker/internal"
)

func main() {
	internal.InitMailer()
}
