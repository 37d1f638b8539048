// Package main provides the CLI entrypoint for data-type-generalizer.
//
// data-type-generalizer is a single-pass batch tool that:
//   - Parses a user-supplied type map ("int:float,bool:str") or loads one from YAML
//   - Loads a CSV or JSON Lines dataset into a columnar frame
//   - Coerces every column whose inferred type appears in the map
//   - Writes the dataset back out with column and row order preserved
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/ShadowGuardAI/dso-data-type-generalizer/internal/dataset"
	"github.com/ShadowGuardAI/dso-data-type-generalizer/internal/generalize"
	"github.com/ShadowGuardAI/dso-data-type-generalizer/internal/typemap"
)

// Exit codes, one per failure stage.
const (
	exitOK      = 0
	exitParse   = 2 // bad flags or bad type map
	exitLoad    = 3
	exitConvert = 4
	exitWrite   = 5
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("data-type-generalizer", flag.ExitOnError)

	var (
		typeMapArg = fs.String("type_map", "", "comma-separated old:new type pairs, e.g. 'int:float,bool:str'")
		mapFile    = fs.String("map_file", "", "YAML file of old: new type pairs (alternative to --type_map)")
		delimiter  = fs.String("delimiter", ",", "CSV field delimiter")
		verbose    = fs.Bool("verbose", false, "dump the parsed type map and inferred schema to stderr")
	)

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] <input_file> <output_file>\n\n", fs.Name())
		fmt.Fprintln(fs.Output(), "Generalizes data types in a structured dataset (e.g., integers to floats).")
		fmt.Fprintln(fs.Output(), "Supported types: int, float, str, bool, object.")
		fmt.Fprintln(fs.Output(), "\nFlags:")
		fs.PrintDefaults()
	}

	// ExitOnError: exits 0 on -h, 2 on bad flags
	fs.Parse(args)

	if fs.NArg() != 2 {
		fs.Usage()
		return exitParse
	}

	input, output := fs.Arg(0), fs.Arg(1)

	if (*typeMapArg == "") == (*mapFile == "") {
		log.Print("exactly one of --type_map or --map_file is required")
		return exitParse
	}

	delim := []rune(*delimiter)
	if len(delim) != 1 {
		log.Printf("delimiter must be a single character, got %q", *delimiter)
		return exitParse
	}

	var (
		m   typemap.Map
		err error
	)
	if *mapFile != "" {
		m, err = typemap.LoadFile(*mapFile)
	} else {
		m, err = typemap.Parse(*typeMapArg)
	}
	if err != nil {
		log.Printf("error parsing type map: %v", err)
		return exitParse
	}

	if *verbose {
		spew.Fdump(os.Stderr, m)
	}

	opts := dataset.Options{
		Format:    dataset.Detect(input),
		Delimiter: delim[0],
	}

	f, err := dataset.Load(input, opts)
	if err != nil {
		log.Printf("error loading dataset: %v", err)
		return exitLoad
	}

	if *verbose {
		schema := make(map[string]string, len(f.Columns))
		for _, col := range f.Columns {
			schema[col.Name] = col.Kind.String()
		}
		spew.Fdump(os.Stderr, schema)
	}

	err = generalize.Apply(f, m)
	if err != nil {
		log.Printf("error generalizing dataset: %v", err)
		return exitConvert
	}

	err = dataset.Write(f, output, opts)
	if err != nil {
		log.Printf("error writing dataset: %v", err)
		return exitWrite
	}

	log.Printf("successfully generalized data types and saved to %s", output)

	return exitOK
}
