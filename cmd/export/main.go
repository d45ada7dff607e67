// Command export applies a filter spec to a dataset file and writes the
// filtered rows as CSV, without starting the API server.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"goattrition/adapters/tabular"
	"goattrition/domain/filter"
	"goattrition/internal/engine"
)

func main() {
	dataFile := flag.String("data", "", "path to the CSV or XLSX dataset (required)")
	specFile := flag.String("spec", "", "path to a JSON filter spec (optional, default: all rows)")
	outFile := flag.String("out", "", "output path (optional, default: stdout)")
	flag.Parse()

	if *dataFile == "" {
		fmt.Fprintln(os.Stderr, "usage: export -data <file> [-spec <file>] [-out <file>]")
		os.Exit(2)
	}

	var spec filter.Spec
	if *specFile != "" {
		raw, err := os.ReadFile(*specFile)
		if err != nil {
			fatal("read spec: %v", err)
		}
		if err := json.Unmarshal(raw, &spec); err != nil {
			fatal("parse spec: %v", err)
		}
	}

	ds, err := tabular.NewDataReader().Load(context.Background(), *dataFile)
	if err != nil {
		fatal("load dataset: %v", err)
	}

	view := engine.Apply(ds, spec)
	buf, err := tabular.ExportCSV(view)
	if err != nil {
		fatal("export: %v", err)
	}

	if *outFile == "" {
		os.Stdout.Write(buf)
		return
	}
	if err := os.WriteFile(*outFile, buf, 0644); err != nil {
		fatal("write output: %v", err)
	}
	fmt.Fprintf(os.Stderr, "wrote %d of %d rows to %s\n", view.Len(), ds.RowCount(), *outFile)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
