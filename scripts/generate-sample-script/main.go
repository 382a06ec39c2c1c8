package main

import (
	"context"
	"fmt"
	"os"

	recgen "github.com/goliatone/go-recgen"
	pkgrecording "github.com/goliatone/go-recgen/pkg/recording"
)

func main() {
	ctx := context.Background()

	const (
		fixturePath = "examples/fixtures/login.jsonl"
		outputPath  = "examples/fixtures/login.lisp"
	)

	source := pkgrecording.SourceFromFile(fixturePath)
	script, err := recgen.Generate(ctx, source, recgen.FormatScript)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate script: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputPath, script, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Generated sample script (%d bytes) → %s\n", len(script), outputPath)
}
