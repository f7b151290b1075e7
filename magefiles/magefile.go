//go:build mage

// Package main provides build targets for the registrar project using Mage.
//
// Usage:
//
//	mage build          Compile registrar binary to bin/
//	mage test           Run all tests
//	mage cover          Run tests with a coverage profile in bin/
//	mage lint           Run golangci-lint
//	mage demo           Build, then run a short registrar session in a temp dir
//	mage clean          Remove build artifacts
//	mage install        Install registrar to GOPATH/bin
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "registrar"
	binaryDir  = "bin"
	cmdDir     = "./cmd/registrar"
	coverFile  = "coverage.out"
)

// Build compiles the registrar binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Cover runs all tests and prints per-function coverage.
func Cover() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	profile := filepath.Join(binaryDir, coverFile)
	if err := sh.RunV("go", "test", "-coverprofile="+profile, "./..."); err != nil {
		return err
	}
	return sh.RunV("go", "tool", "cover", "-func="+profile)
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Demo builds the binary and walks through adding, linking and listing
// entities against a throwaway data directory.
func Demo() error {
	mg.Deps(Build)

	dir, err := os.MkdirTemp("", "registrar-demo-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	bin := filepath.Join(binaryDir, binaryName)
	global := []string{
		"--config-dir", filepath.Join(dir, "config"),
		"--data-dir", filepath.Join(dir, "data"),
	}
	steps := [][]string{
		{"init"},
		{"instructor", "add", "--name", "Alice Smith", "--age", "45", "--email", "alice@aub.edu", "--id", "1000"},
		{"course", "add", "--id", "CSE101", "--name", "Intro to Computer Science", "--instructor", "1000"},
		{"student", "add", "--name", "Sammy", "--age", "20", "--email", "sna61@aub.edu", "--id", "202202056"},
		{"register", "--student", "202202056", "--course", "CSE101"},
		{"list"},
		{"show", "202202056"},
	}
	for _, step := range steps {
		fmt.Printf("$ registrar %v\n", step)
		if err := sh.RunV(bin, append(global, step...)...); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output("go", "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
