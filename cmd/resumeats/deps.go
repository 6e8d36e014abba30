package main

import (
	"io"
	"os"
)

// Environment holds the process-level dependencies, injectable for
// tests.
type Environment struct {
	Stdout io.Writer
	Stderr io.Writer
}

// realEnvironment returns the production environment.
func realEnvironment() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
