package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/AlecAivazis/survey/v2"

	recgen "github.com/goliatone/go-recgen"
	"github.com/goliatone/go-recgen/pkg/orchestrator"
	pkgrecording "github.com/goliatone/go-recgen/pkg/recording"
)

func main() {
	source := flag.String("source", "", "recording path (.jsonl event log)")
	format := flag.String("format", "", "output format: body, script, or test")
	output := flag.String("output", "", "output file (stdout if empty)")
	configPath := flag.String("config", "", "YAML config supplying defaults")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *source == "" {
		*source = cfg.Source
	}
	if *source == "" {
		log.Fatal("a recording source is required (-source)")
	}

	target := resolveFormat(*format, cfg.Format)
	out := *output
	if out == "" {
		out = cfg.Output
	}

	ctx := context.Background()
	gen := recgen.NewOrchestrator(
		recgen.WithFailureMode(recgen.FailureModeExit),
	)

	text, err := gen.Generate(ctx, orchestrator.Request{
		Source: pkgrecording.SourceFromFile(*source),
		Format: target,
	})
	if err != nil {
		// Unreachable under FailureModeExit; kept for safety.
		log.Fatalf("Failed to generate code: %v", err)
	}

	if out != "" {
		if err := os.WriteFile(out, text, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Code written to %s\n", out)
	} else {
		fmt.Println(string(text))
	}
}

// resolveFormat picks the output format from the flag, then the config file,
// then an interactive prompt.
func resolveFormat(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if configValue != "" {
		return configValue
	}
	return promptFormat()
}

func promptFormat() string {
	choice := recgen.FormatScript
	prompt := &survey.Select{
		Message: "Output format:",
		Options: []string{recgen.FormatBody, recgen.FormatScript, recgen.FormatTest},
		Default: recgen.FormatScript,
	}
	if err := survey.AskOne(prompt, &choice); err != nil {
		// Non-interactive session; fall back to the default renderer.
		return recgen.FormatScript
	}
	return choice
}
