package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	project "github.com/Someblueman/rust-project-gen/internal/project"
)

func main() {
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opts, err := project.LoadOptions(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	doc, notes, err := project.Generate(ctx, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	outPath, err := project.WriteProject(doc, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	for _, note := range notes {
		fmt.Fprintf(os.Stderr, "note: %s\n", note)
	}
	fmt.Printf("Generated %s: %d crates\n", outPath, len(doc.Crates))
}
