// Package main is the entry point for the qfkeys blueprint converter.
package main

func main() {
	Execute()
}
