// Command storekeygen generates Encode/Decode/BorrowDecode method sets for Go types tagged
// with a //storekey:generate directive comment. It is the idiomatic Go stand-in for the
// original format's derive proc-macro: a source-generation CLI meant to be invoked via
// //go:generate, in the tradition of stringer and protoc-gen-go.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/surrealdb/storekey/internal/derive"
	"github.com/surrealdb/storekey/internal/logging"
)

func main() {
	var (
		output  = flag.String("output", "", "output file (default: <input>_storekeygen.go)")
		verbose = flag.Bool("v", false, "enable debug logging")
		jsonLog = flag.Bool("json", false, "emit logs as JSON")
	)
	flag.Parse()

	log := logging.New(*verbose, *jsonLog)

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: storekeygen [flags] <file.go>")
		os.Exit(2)
	}
	inputPath := flag.Arg(0)

	if err := run(inputPath, *output, log); err != nil {
		log.Error("generation failed", "error", err, "input", inputPath)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string, log interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}) error {
	src, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inputPath, err)
	}

	parsed, err := derive.Parse(inputPath, src)
	if err != nil {
		return err
	}
	log.Debug("parsed directives", "structs", len(parsed.Structs), "unions", len(parsed.Unions))

	if len(parsed.Structs) == 0 && len(parsed.Unions) == 0 {
		log.Info("no storekey:generate directives found", "input", inputPath)
		return nil
	}

	generated, err := derive.Generate(parsed)
	if err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = defaultOutputPath(inputPath)
	}
	if err := os.WriteFile(outputPath, generated, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	log.Info("wrote generated code", "output", outputPath)
	return nil
}

func defaultOutputPath(inputPath string) string {
	const suffix = "_storekeygen.go"
	trimmed := inputPath
	if len(trimmed) > 3 && trimmed[len(trimmed)-3:] == ".go" {
		trimmed = trimmed[:len(trimmed)-3]
	}
	return trimmed + suffix
}
