package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// InputFormat допустимые значения.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// ValidateFile — проверяет файл как одно тело (JSON) или поток тел (JSONL)
// и возвращает сводку "N valid / M invalid".
func ValidateFile(ctx context.Context, check Check, filePath string, format InputFormat, ow io.Writer) (string, error) {
	if format == FormatAuto {
		if strings.EqualFold(filepath.Ext(filePath), ".jsonl") {
			format = FormatJSONL
		} else {
			format = FormatJSON
		}
	}

	file, err := os.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	switch format {
	case FormatJSON:
		raw, err := io.ReadAll(file)
		if err != nil {
			return "", fmt.Errorf("read file: %w", err)
		}
		p, err := ValidatePayloadFromJSON(check, raw)
		if err != nil {
			return "0 valid / 1 invalid", err
		}
		canonical, err := json.Marshal(p)
		if err != nil {
			return "", fmt.Errorf("marshal: %w", err)
		}
		if _, err := ow.Write(append(canonical, '\n')); err != nil {
			return "", fmt.Errorf("write json: %w", err)
		}
		return "1 valid / 0 invalid", nil

	case FormatJSONL:
		res, err := ValidateJSONLStream(ctx, check, file, ow)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d valid / %d invalid", res.ValidLinesCount, res.InvalidLinesCount), nil

	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
