// faqdex-load imports a JSON knowledge base into a running faqdex server.
//
// Usage:
//
//	faqdex-load -file kb.json -url http://localhost:8080 -api-key secret
//
// The input file is a JSON array of {question, answer, keywords?} objects.
// Keywords are derived server-side from the question text when omitted.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	faqdex "github.com/helpbase/faqdex/pkg/sdk"
)

func main() {
	var (
		file    = flag.String("file", "", "path to the JSON knowledge base (required)")
		url     = flag.String("url", "http://localhost:8080", "faqdex server base URL")
		apiKey  = flag.String("api-key", os.Getenv("FAQDEX_API_KEY"), "admin API key")
		timeout = flag.Duration("timeout", 60*time.Second, "overall import timeout")
	)
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", *file, err)
		os.Exit(1)
	}

	var records []faqdex.Record
	if err := json.Unmarshal(data, &records); err != nil {
		fmt.Fprintf(os.Stderr, "parse %s: %v\n", *file, err)
		os.Exit(1)
	}
	if len(records) == 0 {
		fmt.Fprintln(os.Stderr, "no records to import")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := faqdex.New(*url, faqdex.WithAPIKey(*apiKey))

	results, err := client.ImportRecords(ctx, records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "import failed: %v\n", err)
		os.Exit(1)
	}

	var created, updated, failed int
	for _, res := range results {
		switch {
		case res.Error != "":
			failed++
			fmt.Fprintf(os.Stderr, "record %s: %s\n", res.ID, res.Error)
		case res.Created:
			created++
		default:
			updated++
		}
	}

	fmt.Printf("imported %d records: %d created, %d updated, %d failed\n",
		len(results), created, updated, failed)
	if failed > 0 {
		os.Exit(1)
	}
}
