// Package tools exposes resume parsing, job matching and catalog listing as
// callable tools for external AI agents.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"
)

// ErrToolNotFound is returned by Call for an unregistered name
var ErrToolNotFound = errors.New("tool not found")

// Tool is an operation exposed to external agents over MCP
type Tool interface {
	// Name returns the tool name
	Name() string

	// Description returns the tool description for the agent
	Description() string

	// InputSchema returns the JSON schema for the tool input
	InputSchema() map[string]interface{}

	// Execute runs the tool with the given input. Input and domain failures
	// are reported in the returned ToolResult; err is reserved for encoding.
	Execute(ctx context.Context, input json.RawMessage) (json.RawMessage, error)
}

// Definition is the function-calling description of a tool
type Definition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"`
}

// ToolRegistry holds all available tools. It is safe for concurrent use.
type ToolRegistry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool, replacing any tool with the same name
func (r *ToolRegistry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[tool.Name()]; exists {
		log.Printf("[Tools] Replacing tool %s", tool.Name())
	}
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools, sorted by name
func (r *ToolRegistry) List() []Tool {
	r.mu.RLock()
	list := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		list = append(list, tool)
	}
	r.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}

// GetToolDefinitions returns function-calling definitions for every tool
func (r *ToolRegistry) GetToolDefinitions() []Definition {
	list := r.List()
	definitions := make([]Definition, 0, len(list))
	for _, tool := range list {
		definitions = append(definitions, Definition{
			Name:        tool.Name(),
			Description: tool.Description(),
			Parameters:  tool.InputSchema(),
		})
	}
	return definitions
}

// Call runs the named tool and logs its duration
func (r *ToolRegistry) Call(ctx context.Context, name string, input json.RawMessage) (json.RawMessage, error) {
	tool, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}

	start := time.Now()
	result, err := tool.Execute(ctx, input)
	if err != nil {
		log.Printf("[Tools] %s error after %s: %v", name, time.Since(start).Round(time.Millisecond), err)
		return nil, err
	}

	log.Printf("[Tools] %s completed in %s", name, time.Since(start).Round(time.Millisecond))
	return result, nil
}

// ToolResult is the envelope every tool returns
type ToolResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ParseResult decodes a tool's raw output
func ParseResult(raw json.RawMessage) (ToolResult, error) {
	var result ToolResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return ToolResult{}, fmt.Errorf("failed to decode tool result: %w", err)
	}
	return result, nil
}

// NewSuccessResult creates a successful tool result
func NewSuccessResult(data interface{}) (json.RawMessage, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tool data: %w", err)
	}
	return json.Marshal(ToolResult{Success: true, Data: dataBytes})
}

// NewErrorResult creates an error tool result
func NewErrorResult(errMsg string) (json.RawMessage, error) {
	return json.Marshal(ToolResult{Success: false, Error: errMsg})
}
