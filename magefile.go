//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binary  = "kannadacards"
	mainPkg = "./cmd/kannadacards"
)

var Default = Build

// Build compiles the kannadacards binary into the repository root
func Build() error {
	fmt.Println("Building", binary)
	return sh.RunV("go", "build", "-o", binary, mainPkg)
}

// Test runs all tests with the race detector
func Test() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Vet runs go vet on all packages
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Install installs the binary into $GOPATH/bin
func Install() error {
	mg.Deps(Test)
	fmt.Println("Installing", binary)
	return sh.RunV("go", "install", mainPkg)
}

// Clean removes build artifacts
func Clean() error {
	fmt.Println("Cleaning")
	return os.RemoveAll(binary)
}
