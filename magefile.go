//go:build mage
// +build mage

package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "./justify"

// Default is the default build target.
var Default = Build

// Build builds the justify CLI with its version stamped in.
func Build(ctx context.Context) error {
	ldflags, err := getLdflags()
	if err != nil {
		return err
	}

	return sh.RunV("go", "build", "-ldflags", ldflags, "-o", binary, "./cmd/justify")
}

// Clean removes the built binary.
func Clean(ctx context.Context) error {
	return sh.Rm(binary)
}

// Lint runs golangci-lint over the module.
func Lint(ctx context.Context) error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// UnitTest runs the package tests, including the ginkgo suite in internal/text.
func UnitTest(ctx context.Context) error {
	return goTest("./internal/...", "./cmd/...")
}

// IntegrationTest drives the built binary; the suite skips without it.
func IntegrationTest(ctx context.Context) error {
	mg.CtxDeps(ctx, Build)
	return goTest("./test/...")
}

func Test(ctx context.Context) error {
	mg.SerialCtxDeps(ctx, UnitTest, IntegrationTest)
	return nil
}

func goTest(packages ...string) error {
	args := []string{"test", "-race"}
	if os.Getenv("VERBOSE") != "" {
		args = append(args, "-v")
	}

	return sh.RunV("go", append(args, packages...)...)
}

func getLdflags() (string, error) {
	if ldflags := os.Getenv("LDFLAGS"); ldflags != "" {
		return ldflags, nil
	}

	sha, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "", err
	}

	// Checkout builds are versioned as a 0.0.0 prerelease.
	return fmt.Sprintf("-X github.com/rwx-cloud/justify/internal/versions.currentVersion=0.0.0-git.%s", strings.TrimSpace(string(sha))), nil
}
