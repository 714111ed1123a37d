package logsvc

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/studyease/backend/core"
)

func TestRollbarLogger_prepare(t *testing.T) {
	logger := RollbarLogger{std: log.New(&bytes.Buffer{}, "", 0)}
	cErr := errors.Wrap(core.NewError(core.KindSchemaViolation, "parsing quiz response", "quiz[2]: bad"), "generating quiz")

	args := logger.prepare("quiz generation failed", []interface{}{cErr, map[string]interface{}{"subject": "Math"}})
	if len(args) != 3 {
		t.Fatalf("prepare() len = %d, want 3 (msg, error, custom)", len(args))
	}
	if args[0] != "quiz generation failed" {
		t.Errorf("prepare()[0] = %v, want the message", args[0])
	}
	if args[1] != cErr {
		t.Errorf("prepare()[1] = %v, want the error", args[1])
	}
	custom, ok := args[2].(map[string]interface{})
	if !ok {
		t.Fatalf("prepare()[2] = %T, want custom data", args[2])
	}
	want := map[string]interface{}{
		"subject":   "Math",
		"errorKind": "schema_violation",
		"errorOp":   "parsing quiz response",
	}
	for k, v := range want {
		if custom[k] != v {
			t.Errorf("custom[%q] = %v, want %v", k, custom[k], v)
		}
	}
}

func TestRollbarLogger_print(t *testing.T) {
	var buf bytes.Buffer
	logger := RollbarLogger{std: log.New(&buf, "API : ", 0)}
	logger.Enable(false)

	logger.Info("Application initializing", map[string]interface{}{"build": "test"})
	if !strings.Contains(buf.String(), "API : Application initializing") {
		t.Errorf("Info() output = %q", buf.String())
	}
	if !strings.Contains(buf.String(), "build:test") {
		t.Errorf("Info() output should print extra args; got %q", buf.String())
	}
}
