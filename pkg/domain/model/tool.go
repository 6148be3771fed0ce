package model

// ToolInvocation is a structured request from the model naming a registered
// tool and its arguments.
type ToolInvocation struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// ActionResult is the outcome of executing a tool invocation. Execution
// failures of any kind are reported through a failed ActionResult, never as
// errors escaping the dispatch boundary.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ModelReply is the normalized output of one model invocation: either free
// text, or one or more tool calls the model elected to make.
type ModelReply struct {
	Text      string
	ToolCalls []ToolInvocation
}
