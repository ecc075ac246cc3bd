package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

type entry struct {
	Level   string         `json:"level"`
	Time    string         `json:"time"`
	Message string         `json:"message"`
	Fields  map[string]any `json:"fields,omitempty"`
}

// Log writes one JSON line to stderr. Stdout is reserved for the report
// itself, so logs never interleave with timeline or status lines.
func Log(level, msg string, fields map[string]any) {
	if level == "debug" && !debugEnabled() {
		return
	}
	e := entry{Level: level, Time: time.Now().UTC().Format(time.RFC3339Nano), Message: msg, Fields: fields}
	b, _ := json.Marshal(e)
	fmt.Fprintln(os.Stderr, string(b))
}

func Debug(msg string, fields map[string]any) { Log("debug", msg, fields) }
func Info(msg string, fields map[string]any)  { Log("info", msg, fields) }
func Error(msg string, fields map[string]any) { Log("error", msg, fields) }

func debugEnabled() bool {
	return strings.EqualFold(os.Getenv("LOG_LEVEL"), "debug")
}
