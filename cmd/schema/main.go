package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/umputun/newspager/pkg/config"
)

func main() {
	// generate schema for Config
	schema, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("failed to generate schema: %v", err)
	}

	// marshal to JSON with indentation
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("failed to marshal schema: %v", err)
	}

	// write to file
	outputPath := "schema.json"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil {
		log.Fatalf("failed to write schema file: %v", err)
	}

	fmt.Printf("Schema generated successfully at %s\n", outputPath)
}
