/*
Jelcolgen generates the database/sql glue that lets custom Go types be used
as database columns, and lets structs be built positionally from query rows.

Usage:

	jelcolgen [flags]

Each type named with -t must already implement the conversion contract: a
ToColumn method returning one of the raw column types (int64, float64,
bool, string, []byte, or time.Time), and a package-level function named
<Type>FromColumn that accepts the raw type and returns (<Type>, error).
Jelcolgen emits Value and Scan methods that call these, so values of the
type can be bound into queries and scanned out of rows directly.

Each struct named with -q must have only fields that are raw column types
or types already registered as columns. Jelcolgen emits a ScanRow method
that fills the struct from a row positionally, in field declaration order,
plus a RowValues method producing bind arguments in the same order.

The tool is intended to be run via go:generate directives next to the
types it operates on:

	//go:generate jelcolgen -t Color -q User

The flags are:

	-t, --type NAME
		Register the named type as a custom column. May be given multiple
		times.
	-q, --queryable NAME
		Equip the named struct with positional row scanning. May be given
		multiple times.
	-d, --dir PATH
		Use the package in the given directory instead of the current one.
	-o, --output PATH
		Write generated files to the given directory instead of the package
		directory.
	-c, --conf PATH
		Read the types to generate from the given manifest file (JSON or
		YAML) instead of -t/-q flags.
	-Q, --quiet
		Suppress all output except errors.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/jelcol/internal/gen"
	"github.com/dekarrin/jelcol/logging"
	"github.com/spf13/pflag"
)

const (
	exitSuccess = 0
	exitError   = 1
	exitPanic   = 2
)

var exitCode int

var (
	flagTypes     = pflag.StringSliceP("type", "t", nil, "Custom type to register as a column; repeatable")
	flagQueryable = pflag.StringSliceP("queryable", "q", nil, "Struct to equip with positional row scanning; repeatable")
	flagDir       = pflag.StringP("dir", "d", ".", "Directory of the target package")
	flagOutput    = pflag.StringP("output", "o", "", "Directory to write generated files to instead of the package directory")
	flagConf      = pflag.StringP("conf", "c", "", "Path to a manifest file to use instead of -t/-q flags")
	flagQuiet     = pflag.BoolP("quiet", "Q", false, "Suppress all output except errors")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			fmt.Fprintf(os.Stderr, "fatal panic: %v\n", panicErr)
			exitCode = exitPanic
		}
		os.Exit(exitCode)
	}()

	pflag.Parse()

	var log logging.Logger = logging.NoOpLogger{}
	if !*flagQuiet {
		var err error
		log, err = logging.New(logging.Jellog, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			exitCode = exitError
			return
		}
	}

	dir := *flagDir
	columns := *flagTypes
	queryables := *flagQueryable

	if *flagConf != "" {
		if len(columns) > 0 || len(queryables) > 0 {
			fmt.Fprintf(os.Stderr, "ERROR: -c cannot be combined with -t or -q\n")
			exitCode = exitError
			return
		}

		log.Debugf("Loading manifest %s...", *flagConf)
		m, err := gen.LoadManifest(*flagConf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			exitCode = exitError
			return
		}

		dir = m.Dir
		columns = m.Columns
		queryables = m.Queryable
	}

	if len(columns) == 0 && len(queryables) == 0 {
		fmt.Fprintf(os.Stderr, "ERROR: nothing to generate; give at least one -t or -q, or a manifest with -c\n")
		exitCode = exitError
		return
	}

	log.Debugf("Loading package in %s...", dir)
	pkg, err := gen.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}

	var files []gen.GeneratedFile

	for _, name := range columns {
		col, err := pkg.Column(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			exitCode = exitError
			return
		}

		src, err := gen.GenerateColumn(col)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s: %s\n", name, err.Error())
			exitCode = exitError
			return
		}

		files = append(files, gen.GeneratedFile{Filename: gen.ColumnFileName(name), Content: src})
		log.Infof("registered column type %s (raw %s)", name, col.Raw)
	}

	for _, name := range queryables {
		q, err := pkg.Queryable(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			exitCode = exitError
			return
		}

		src, err := gen.GenerateQueryable(q)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s: %s\n", name, err.Error())
			exitCode = exitError
			return
		}

		files = append(files, gen.GeneratedFile{Filename: gen.QueryableFileName(name), Content: src})
		log.Infof("made %s queryable (%d fields)", name, len(q.Fields))
	}

	out := *flagOutput
	if out == "" {
		out = dir
	}

	if err := gen.WriteFiles(files, out); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		exitCode = exitError
		return
	}

	log.Infof("wrote %d file(s) to %s", len(files), out)
	exitCode = exitSuccess
}
