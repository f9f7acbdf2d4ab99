package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/leengari/simple-rdbms/internal/engine"
	"github.com/leengari/simple-rdbms/internal/executor"
)

const prompt = "> "

// Start reads one statement per line from in and writes results to out
// until exit, \q or end of input.
func Start(eng *engine.Engine, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, "Welcome to Simple-RDBMS")
	fmt.Fprintln(out, "Type 'tables' to list tables, 'describe <table>' for a schema, 'exit' or '\\q' to quit.")

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		if line == "exit" || line == "\\q" {
			return nil
		}

		if line == "tables" {
			printTables(out, eng)
			continue
		}

		if name, ok := strings.CutPrefix(line, "describe "); ok {
			printSchema(out, eng, strings.TrimSpace(name))
			continue
		}

		// Execute using Engine
		result, err := eng.Execute(line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		// Print Result
		PrintResult(out, result)
	}
}

func printTables(w io.Writer, eng *engine.Engine) {
	tables, err := eng.ListTables()
	if err != nil {
		fmt.Fprintf(w, "Error listing tables: %v\n", err)
		return
	}
	if len(tables) == 0 {
		fmt.Fprintln(w, "No tables")
		return
	}
	fmt.Fprintln(w, "Tables:")
	for _, t := range tables {
		fmt.Fprintf(w, "  - %s\n", t)
	}
}

func printSchema(w io.Writer, eng *engine.Engine, name string) {
	db := eng.Database()
	if db == nil {
		fmt.Fprintln(w, "Error: no database open")
		return
	}
	s, err := db.Table(name)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "column\ttype\tconstraint")
	fmt.Fprintln(tw, "---\t---\t---")
	for _, col := range s.Columns {
		constraint := ""
		switch {
		case col.Name == s.PrimaryKey:
			constraint = "PRIMARY KEY"
		case s.IsUnique(col.Name):
			constraint = "UNIQUE"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", col.Name, col.Type, constraint)
	}
	tw.Flush()
}

// PrintResult writes the message and, for queries, a table of rows.
// Columns absent from a row print as NULL.
func PrintResult(w io.Writer, res *executor.Result) {
	if res.Message != "" {
		fmt.Fprintln(w, res.Message)
	}

	if len(res.Columns) == 0 {
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	// Header
	fmt.Fprintln(tw, strings.Join(res.Columns, "\t"))

	// Separator
	sep := make([]string, len(res.Columns))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	// Rows
	for _, row := range res.Rows {
		cells := make([]string, len(res.Columns))
		for i, col := range res.Columns {
			val, ok := row[col]
			if !ok {
				cells[i] = "NULL"
			} else {
				cells[i] = val.String()
			}
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	tw.Flush()
}
