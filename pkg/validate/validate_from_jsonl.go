package validate

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// JSONLResult — статистика валидации потока JSONL.
type JSONLResult struct {
	ValidLinesCount   int
	InvalidLinesCount int
}

// ValidateJSONLStream — читает JSONL (одно тело запроса на строку), проверяет каждую строку
// и пишет в writer содержимое data валидных строк в каноническом виде.
// Пустые строки пропускаются; невалидные только учитываются в счётчике.
func ValidateJSONLStream(ctx context.Context, check Check, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 10*1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		line := scanner.Bytes()
		if strings.TrimSpace(string(line)) == "" {
			continue
		}

		p, err := ValidatePayloadFromJSON(check, line)
		if err != nil {
			res.InvalidLinesCount++
			continue
		}

		canonical, err := json.Marshal(p)
		if err != nil {
			return res, fmt.Errorf("marshal valid line: %w", err)
		}
		if _, err := ow.Write(append(canonical, '\n')); err != nil {
			return res, fmt.Errorf("write valid line: %w", err)
		}
		res.ValidLinesCount++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}
