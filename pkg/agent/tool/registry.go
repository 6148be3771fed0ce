// Package tool defines the action-tool registry and dispatcher. Every
// side-effecting action a model response can trigger goes through Dispatch;
// no failure mode of a tool escapes it as an error.
package tool

import (
	"context"
	"fmt"

	"github.com/m-mizutani/gollem"
	"github.com/nexus-lab/frontdesk/pkg/domain/model"
	"github.com/nexus-lab/frontdesk/pkg/utils/logging"
)

// Registry holds the tools exposed to the model, keyed by spec name.
// Registration order is preserved for schema export.
type Registry struct {
	tools map[string]gollem.Tool
	order []string
}

func NewRegistry(tools ...gollem.Tool) *Registry {
	r := &Registry{
		tools: make(map[string]gollem.Tool, len(tools)),
	}
	for _, t := range tools {
		name := t.Spec().Name
		if _, exists := r.tools[name]; exists {
			continue
		}
		r.tools[name] = t
		r.order = append(r.order, name)
	}
	return r
}

// Tools returns the registered tools in registration order, for handing to
// the model as its tool schema.
func (r *Registry) Tools() []gollem.Tool {
	out := make([]gollem.Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Dispatch executes one tool invocation. Unknown tools, missing required
// arguments, tool errors and panics all come back as a failed ActionResult.
// A model hallucinating a tool name is an anomaly worth logging, but never a
// crash.
func (r *Registry) Dispatch(ctx context.Context, inv model.ToolInvocation) (result model.ActionResult) {
	logger := logging.From(ctx)

	defer func() {
		if rec := recover(); rec != nil {
			logger.Error("tool execution panicked",
				"tool", inv.Name,
				"panic", fmt.Sprintf("%v", rec),
			)
			result = model.ActionResult{
				Success: false,
				Message: fmt.Sprintf("Tool %q failed unexpectedly.", inv.Name),
			}
		}
	}()

	t, ok := r.tools[inv.Name]
	if !ok {
		logger.Warn("model requested unknown tool", "tool", inv.Name)
		return model.ActionResult{
			Success: false,
			Message: fmt.Sprintf("Function not found: %s", inv.Name),
		}
	}

	if missing := missingRequired(t.Spec(), inv.Args); missing != "" {
		return model.ActionResult{
			Success: false,
			Message: fmt.Sprintf("Missing required argument %q for tool %q.", missing, inv.Name),
		}
	}

	out, err := t.Run(ctx, inv.Args)
	if err != nil {
		logger.Warn("tool execution failed",
			"tool", inv.Name,
			"error", err.Error(),
		)
		return model.ActionResult{
			Success: false,
			Message: err.Error(),
		}
	}

	msg, _ := out["message"].(string)
	return model.ActionResult{
		Success: true,
		Message: msg,
	}
}

func missingRequired(spec gollem.ToolSpec, args map[string]any) string {
	for name, param := range spec.Parameters {
		if param == nil || !param.Required {
			continue
		}
		v, ok := args[name]
		if !ok {
			return name
		}
		if s, isStr := v.(string); isStr && s == "" {
			return name
		}
	}
	return ""
}
