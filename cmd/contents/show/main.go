package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/prakan/go-content-admin/cmd/contents/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runShow(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("contents show: %v", err)
	}
}

func runShow(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("contents-show", flag.ExitOnError)
	baseURL := fs.String("base-url", "", "Base URL of the content admin API")
	id := fs.String("id", "", "Content ID to fetch")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("id is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		BaseURL: *baseURL,
		Verbose: *verbose,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	record, err := module.Gateway.GetContent(context.Background(), *id)
	if err != nil {
		return fmt.Errorf("get content: %w", err)
	}

	encoded, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	fmt.Fprintln(out, string(encoded))
	return nil
}
