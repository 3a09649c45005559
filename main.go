// This is free and unencumbered software released into the public domain.
// See the UNLICENSE file for details.

// Package main - notecipher encrypts and decrypts notes with a numeric code
// using a layered rotor cipher.
package main

import "github.com/bgallie/notecipher/cmd"

func main() {
	cmd.Execute()
}
