package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	recgen "github.com/goliatone/go-recgen"
	"github.com/goliatone/go-recgen/pkg/model"
	"github.com/goliatone/go-recgen/pkg/orchestrator"
	pkgrecording "github.com/goliatone/go-recgen/pkg/recording"
	"github.com/goliatone/go-recgen/pkg/render"
)

const snapshotRendererName = "session-model-snapshot"

type snapshotRenderer struct {
	path string
}

func (r *snapshotRenderer) Name() string {
	return snapshotRendererName
}

func (r *snapshotRenderer) ContentType() string {
	return "application/json"
}

func (r *snapshotRenderer) Render(_ context.Context, session model.Script, _ render.RenderOptions) ([]byte, error) {
	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(r.path, payload, 0o644); err != nil {
		return nil, err
	}
	return payload, nil
}

func main() {
	var (
		recordingPath = flag.String("recording", "examples/fixtures/login.jsonl", "captured recording path")
		outputPath    = flag.String("output", "examples/fixtures/login_model.json", "output path for the serialized session model")
	)
	flag.Parse()

	ctx := context.Background()

	registry := render.NewRegistry()
	registry.MustRegister(&snapshotRenderer{path: *outputPath})

	orch := recgen.NewOrchestrator(
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(snapshotRendererName),
	)

	_, err := orch.Generate(ctx, orchestrator.Request{
		Source: pkgrecording.SourceFromFile(*recordingPath),
		Format: snapshotRendererName,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to snapshot session model: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Wrote session model snapshot to %s\n", *outputPath)
}
