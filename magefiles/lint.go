// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binLint = "golangci-lint"

// Lint runs go vet, then golangci-lint.
func Lint() error {
	mg.Deps(Vet)
	return sh.RunV(binLint, "run", "./...")
}

// Vet runs go vet on every package.
func Vet() error {
	return sh.RunV(binGo, "vet", "./...")
}

// Tidy runs go mod tidy and fails if go.mod or go.sum changed.
func Tidy() error {
	if err := sh.RunV(binGo, "mod", "tidy"); err != nil {
		return err
	}
	return sh.RunV("git", "diff", "--exit-code", "go.mod", "go.sum")
}
