package logs

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

const (
	LevelDebug = "DEBUG"
	LevelInfo  = "INFO"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
)

var logger = log.New(os.Stdout, "", 0)

// LogJSON writes one JSON line per event on stdout.
func LogJSON(level, message string, fields map[string]interface{}) {
	entry := map[string]interface{}{
		"severity": level,
		"message":  message,
		"time":     time.Now().Format(time.RFC3339),
	}
	for k, v := range fields {
		entry[k] = v
	}
	line, _ := json.Marshal(entry)
	logger.Println(string(line))
}

// LogError is LogJSON at ERROR level with the error message attached.
func LogError(message string, err error, fields map[string]interface{}) {
	if fields == nil {
		fields = map[string]interface{}{}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	LogJSON(LevelError, message, fields)
}
