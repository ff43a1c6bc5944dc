// Package tools implements the server-side tool executors the agents call
// during a conversation. Every tool takes JSON arguments and returns
// formatted text suitable both for the model and for direct display.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/campushq/unidesk/internal/adapter/llm"
	"github.com/campushq/unidesk/internal/resolver"
)

// ExecutorFunc defines a server-side tool executor.
type ExecutorFunc func(ctx context.Context, args json.RawMessage) (string, error)

// Tool pairs a wire-level definition with its executor.
type Tool struct {
	Definition llm.Tool
	Execute    ExecutorFunc
}

// Registry stores tools keyed by tool name.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates a registry with every builtin tool registered,
// backed by the given resolver.
func NewRegistry(res *resolver.Resolver) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	registerCourseTools(r, res)
	registerScheduleTools(r)
	registerPoetTools(r, res)
	return r
}

// Register adds a new tool.
func (r *Registry) Register(name string, def llm.Tool, exec ExecutorFunc) error {
	if name == "" {
		return fmt.Errorf("tool name is required")
	}
	if exec == nil {
		return fmt.Errorf("executor is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[name]; exists {
		return fmt.Errorf("tool already registered: %s", name)
	}
	r.tools[name] = Tool{Definition: def, Execute: exec}
	return nil
}

// MustRegister adds a tool or panics. Used for builtins at construction.
func (r *Registry) MustRegister(name string, def llm.Tool, exec ExecutorFunc) {
	if err := r.Register(name, def, exec); err != nil {
		panic(err)
	}
}

// Execute runs the named tool.
func (r *Registry) Execute(ctx context.Context, name string, args json.RawMessage) (string, error) {
	if name == "" {
		return "", fmt.Errorf("tool name is required")
	}
	r.mu.RLock()
	tool, ok := r.tools[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("no tool registered for %s", name)
	}
	return tool.Execute(ctx, args)
}

// Schemas returns the wire definitions for the named tools, skipping names
// that are not registered.
func (r *Registry) Schemas(names []string) []llm.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]llm.Tool, 0, len(names))
	for _, name := range names {
		if tool, ok := r.tools[name]; ok {
			out = append(out, tool.Definition)
		}
	}
	return out
}

// objectSchema builds the JSON schema for a tool with string properties.
func objectSchema(required []string, props map[string]string) map[string]interface{} {
	properties := make(map[string]interface{}, len(props))
	for name, desc := range props {
		properties[name] = map[string]interface{}{"type": "string", "description": desc}
	}
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func funcDef(name, description string, params map[string]interface{}) llm.Tool {
	return llm.Tool{
		Type: "function",
		Function: llm.ToolFunction{
			Name:        name,
			Description: description,
			Parameters:  params,
		},
	}
}
