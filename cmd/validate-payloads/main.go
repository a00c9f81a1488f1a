package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/grubdash/pkg/validate"
)

// CLI-приложение для проверки тел запросов без запуска сервера.
func main() {
	kind := flag.String("kind", validate.KindOrder, "body kind: dish|order|order-update")
	inputPath := flag.String("in", "", "path to input (.json or .jsonl). If empty, reads from stdin.")
	formatStr := flag.String("format", "auto", "input format: auto|json|jsonl")
	flag.Parse()

	check, err := validate.CheckFor(*kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}

	ctx := context.Background()
	format := validate.InputFormat(*formatStr)

	// stdin вариант: считаем, что jsonl
	if *inputPath == "" {
		if format != validate.FormatAuto && format != validate.FormatJSONL {
			fmt.Fprintf(os.Stderr, "stdin supports only jsonl, got %s\n", format)
			os.Exit(2)
		}
		res, err := validate.ValidateJSONLStream(ctx, check, os.Stdin, os.Stdout)
		summary := fmt.Sprintf("%d valid / %d invalid", res.ValidLinesCount, res.InvalidLinesCount)
		if err != nil {
			fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "validation done (%s)\n", summary)
		return
	}

	summary, err := validate.ValidateFile(ctx, check, *inputPath, format, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "validation: %v (%s)\n", err, summary)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "validation done (%s)\n", summary)
}
