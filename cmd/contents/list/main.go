package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/prakan/go-content-admin/cmd/contents/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runList(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("contents list: %v", err)
	}
}

func runList(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("contents-list", flag.ExitOnError)
	baseURL := fs.String("base-url", "", "Base URL of the content admin API")
	category := fs.String("category", "ALL", "Category filter (BANNER, PROMOTION, INSURANCE, SUIT_INSURANCE or ALL)")
	page := fs.Int("page", 0, "Zero-based page to fetch")
	pageSize := fs.Int("page-size", 10, "Rows per page")
	verbose := fs.Bool("verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	filter, err := bootstrap.ParseFilter(*category)
	if err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		BaseURL: *baseURL,
		Verbose: *verbose,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	fetched, err := module.Gateway.ListContents(context.Background(), filter, *page, *pageSize)
	if err != nil {
		return fmt.Errorf("list contents: %w", err)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NO\tID\tCATEGORY\tSTATUS\tTITLE")
	for i, summary := range fetched.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			fetched.Meta.Page*fetched.Meta.PageSize+i+1,
			summary.ID, summary.Category, summary.Status, summary.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "page %d of %d (%d records)\n",
		fetched.Meta.Page+1, fetched.Meta.TotalPage, fetched.Meta.TotalRow)
	return nil
}
