package toolreg

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
)

// --- test stubs ---

type echoTool struct {
	name string
	desc string
}

func (t *echoTool) Name() string        { return t.name }
func (t *echoTool) Description() string { return t.desc }
func (t *echoTool) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"text": {Type: "string"},
		},
		Required: []string{"text"},
	}
}
func (t *echoTool) Execute(_ context.Context, args map[string]any) (string, error) {
	text, _ := args["text"].(string)
	return "echo: " + text, nil
}

type failTool struct{}

func (t *failTool) Name() string        { return "fail_tool" }
func (t *failTool) Description() string { return "always fails" }
func (t *failTool) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object", Properties: map[string]*jsonschema.Schema{}}
}
func (t *failTool) Execute(_ context.Context, _ map[string]any) (string, error) {
	return "", errors.New("intentional failure")
}

// --- tests ---

func TestRegister_Get(t *testing.T) {
	r := NewRegistry()
	tool := &echoTool{name: "my_tool", desc: "test tool"}
	r.Register(tool)

	got, ok := r.Get("my_tool")
	if !ok {
		t.Fatal("Get returned ok=false, want true")
	}
	if got.Name() != "my_tool" {
		t.Errorf("Name: got %q, want %q", got.Name(), "my_tool")
	}
}

func TestGet_UnknownTool(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Get("nonexistent"); ok {
		t.Error("Get returned ok=true for unknown tool, want false")
	}
}

func TestExecute_Success(t *testing.T) {
	r := NewRegistry()
	r.Register(&echoTool{name: "echo", desc: "echoes input"})

	result, err := r.Execute(context.Background(), "echo", map[string]any{"text": "world"})
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if result != "echo: world" {
		t.Errorf("Execute result: got %q, want %q", result, "echo: world")
	}
}

func TestExecute_UnknownTool(t *testing.T) {
	r := NewRegistry()

	_, err := r.Execute(context.Background(), "unknown_tool", nil)
	if err == nil {
		t.Fatal("Execute returned nil error for unknown tool, want error")
	}
	if !strings.Contains(err.Error(), "unknown tool") {
		t.Errorf("error message %q should contain %q", err.Error(), "unknown tool")
	}
}

func TestExecute_ToolError(t *testing.T) {
	r := NewRegistry()
	r.Register(&failTool{})

	_, err := r.Execute(context.Background(), "fail_tool", nil)
	if err == nil {
		t.Fatal("Execute returned nil error, want error from tool")
	}
	if !strings.Contains(err.Error(), "intentional failure") {
		t.Errorf("error %q does not contain expected message", err.Error())
	}
}

func TestList_RegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(&echoTool{name: "tool_c", desc: "c"})
	r.Register(&echoTool{name: "tool_a", desc: "a"})
	r.Register(&echoTool{name: "tool_b", desc: "b"})

	want := []string{"tool_c", "tool_a", "tool_b"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names: got %v, want %v", got, want)
	}

	// List is pure: repeated calls return the same sequence.
	for i := 0; i < 3; i++ {
		tools := r.List()
		if len(tools) != len(want) {
			t.Fatalf("List length: got %d, want %d", len(tools), len(want))
		}
		for j, w := range want {
			if tools[j].Name() != w {
				t.Errorf("List call %d [%d]: got %q, want %q", i, j, tools[j].Name(), w)
			}
		}
	}
}

func TestList_Empty(t *testing.T) {
	r := NewRegistry()
	if tools := r.List(); len(tools) != 0 {
		t.Errorf("List on empty registry: got %d tools, want 0", len(tools))
	}
}

func TestRegister_OverwriteKeepsPosition(t *testing.T) {
	r := NewRegistry()
	r.Register(&echoTool{name: "dup", desc: "first"})
	r.Register(&echoTool{name: "other", desc: "other"})
	r.Register(&echoTool{name: "dup", desc: "second"})

	got, ok := r.Get("dup")
	if !ok {
		t.Fatal("Get returned ok=false")
	}
	// Later registration overwrites the earlier one.
	if got.Description() != "second" {
		t.Errorf("Description: got %q, want %q", got.Description(), "second")
	}

	want := []string{"dup", "other"}
	if names := r.Names(); !reflect.DeepEqual(names, want) {
		t.Errorf("Names: got %v, want %v", names, want)
	}
}

func TestExecute_ContextPropagation(t *testing.T) {
	ctxTool := &contextCheckTool{}
	r := NewRegistry()
	r.Register(ctxTool)

	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "check-value")
	if _, err := r.Execute(ctx, "ctx_check", nil); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
}

type contextCheckTool struct{}

func (t *contextCheckTool) Name() string        { return "ctx_check" }
func (t *contextCheckTool) Description() string { return "checks context" }
func (t *contextCheckTool) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Type: "object", Properties: map[string]*jsonschema.Schema{}}
}
func (t *contextCheckTool) Execute(ctx context.Context, _ map[string]any) (string, error) {
	if ctx == nil {
		return "", fmt.Errorf("nil context received")
	}
	return "ok", nil
}
