// Package llm adapts a gollem LLM client to the single-round model
// invocation the responder needs: one prompt in, text plus any requested
// tool calls out.
package llm

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/nexus-lab/frontdesk/pkg/domain/interfaces"
	"github.com/nexus-lab/frontdesk/pkg/domain/model"
)

type Client struct {
	llm gollem.LLMClient
}

var _ interfaces.ModelClient = &Client{}

func New(llm gollem.LLMClient) *Client {
	return &Client{llm: llm}
}

// Invoke runs one model round. Tool calls are returned to the caller for
// dispatch; this adapter never executes tools itself.
func (c *Client) Invoke(ctx context.Context, prompt string, tools []gollem.Tool, systemPrompt string) (*model.ModelReply, error) {
	opts := []gollem.SessionOption{
		gollem.WithSessionSystemPrompt(systemPrompt),
	}
	if len(tools) > 0 {
		opts = append(opts, gollem.WithSessionTools(tools...))
	}

	session, err := c.llm.NewSession(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate content")
	}

	reply := &model.ModelReply{
		Text: strings.Join(resp.Texts, "\n"),
	}
	for _, call := range resp.FunctionCalls {
		if call == nil {
			continue
		}
		reply.ToolCalls = append(reply.ToolCalls, model.ToolInvocation{
			Name: call.Name,
			Args: call.Arguments,
		})
	}
	return reply, nil
}
