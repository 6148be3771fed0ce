package tool_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"
	"github.com/nexus-lab/frontdesk/pkg/agent/tool"
	"github.com/nexus-lab/frontdesk/pkg/domain/model"
)

type stubTool struct {
	name     string
	required []string
	run      func(ctx context.Context, args map[string]any) (map[string]any, error)
}

func (t *stubTool) Spec() gollem.ToolSpec {
	params := map[string]*gollem.Parameter{}
	for _, name := range t.required {
		params[name] = &gollem.Parameter{
			Type:     gollem.TypeString,
			Required: true,
		}
	}
	return gollem.ToolSpec{
		Name:       t.name,
		Parameters: params,
	}
}

func (t *stubTool) Run(ctx context.Context, args map[string]any) (map[string]any, error) {
	return t.run(ctx, args)
}

func TestDispatchSuccess(t *testing.T) {
	r := tool.NewRegistry(&stubTool{
		name: "greet",
		run: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			return map[string]any{"message": "hello"}, nil
		},
	})

	result := r.Dispatch(context.Background(), model.ToolInvocation{Name: "greet"})
	gt.Value(t, result.Success).Equal(true)
	gt.Value(t, result.Message).Equal("hello")
}

func TestDispatchUnknownTool(t *testing.T) {
	r := tool.NewRegistry()

	result := r.Dispatch(context.Background(), model.ToolInvocation{Name: "teleport"})
	gt.Value(t, result.Success).Equal(false)
	gt.Value(t, strings.Contains(result.Message, "teleport")).Equal(true)
}

func TestDispatchMissingRequiredArgument(t *testing.T) {
	called := false
	r := tool.NewRegistry(&stubTool{
		name:     "book",
		required: []string{"date"},
		run: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			called = true
			return nil, nil
		},
	})

	result := r.Dispatch(context.Background(), model.ToolInvocation{
		Name: "book",
		Args: map[string]any{},
	})
	gt.Value(t, result.Success).Equal(false)
	gt.Value(t, strings.Contains(result.Message, "date")).Equal(true)
	gt.Value(t, called).Equal(false)
}

func TestDispatchToolError(t *testing.T) {
	r := tool.NewRegistry(&stubTool{
		name: "flaky",
		run: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			return nil, goerr.New("backend unavailable")
		},
	})

	result := r.Dispatch(context.Background(), model.ToolInvocation{Name: "flaky"})
	gt.Value(t, result.Success).Equal(false)
	gt.Value(t, strings.Contains(result.Message, "backend unavailable")).Equal(true)
}

func TestDispatchToolPanic(t *testing.T) {
	r := tool.NewRegistry(&stubTool{
		name: "explosive",
		run: func(ctx context.Context, args map[string]any) (map[string]any, error) {
			panic("boom")
		},
	})

	result := r.Dispatch(context.Background(), model.ToolInvocation{Name: "explosive"})
	gt.Value(t, result.Success).Equal(false)
	gt.String(t, result.Message).NotEqual("")
}

func TestToolsPreservesRegistrationOrder(t *testing.T) {
	noop := func(ctx context.Context, args map[string]any) (map[string]any, error) {
		return nil, nil
	}
	r := tool.NewRegistry(
		&stubTool{name: "b", run: noop},
		&stubTool{name: "a", run: noop},
	)

	tools := r.Tools()
	gt.Array(t, tools).Length(2)
	gt.Value(t, tools[0].Spec().Name).Equal("b")
	gt.Value(t, tools[1].Spec().Name).Equal("a")
}
