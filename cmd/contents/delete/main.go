package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/prakan/go-content-admin/cmd/contents/internal/bootstrap"
	contentscmd "github.com/prakan/go-content-admin/internal/commands/contents"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runDelete(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("contents delete: %v", err)
	}
}

func runDelete(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("contents-delete", flag.ExitOnError)
	baseURL := fs.String("base-url", "", "Base URL of the content admin API")
	category := fs.String("category", "", "Category the record belongs to")
	id := fs.String("id", "", "Category-specific record ID to delete")
	yes := fs.Bool("yes", false, "Confirm the deletion (required)")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	parsed, err := bootstrap.ParseCategory(*category)
	if err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("id is required")
	}
	if !*yes {
		return fmt.Errorf("refusing to delete %s %s without -yes", parsed, *id)
	}

	module, err := moduleBuilder(bootstrap.Options{
		BaseURL: *baseURL,
		Verbose: *verbose,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := contentscmd.NewDeleteContentHandler(module.Gateway, module.Logger)
	cmd := contentscmd.DeleteContentCommand{
		Category: parsed,
		RecordID: *id,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute delete command: %w", err)
	}

	fmt.Fprintf(out, "deleted %s %s\n", parsed, *id)
	return nil
}
