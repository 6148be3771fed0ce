package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
	"github.com/nexus-lab/frontdesk/pkg/utils/errutil"
)

// apologyMessage is returned verbatim whenever the model provider fails.
// Callers of the receptionist never see a raw provider error.
const apologyMessage = "I apologize, but I'm having trouble accessing my systems right now."

const noResponseMessage = "No response generated."

const receptionistPromptFormat = `You are an AI Receptionist for a business.
Today is %s.
Use the provided BUSINESS CONTEXT to answer questions.
If the user wants to book an appointment, use the 'bookAppointment' tool.

%s`

// Respond answers one visitor inquiry for a tenant. When the model elects to
// call a tool, only the first call is dispatched and its outcome is rendered
// as a system-action line instead of free text.
func (uc *UseCases) Respond(ctx context.Context, query string, tenantID types.TenantID) (string, error) {
	if query == "" {
		return "", goerr.New("query is required")
	}

	groundingCtx, err := uc.grounding.BuildContext(ctx, tenantID)
	if err != nil {
		return "", goerr.Wrap(err, "failed to build grounding context")
	}

	today := uc.now().UTC().Format("2006-01-02")
	systemPrompt := fmt.Sprintf(receptionistPromptFormat, today, groundingCtx)

	reply, err := uc.model.Invoke(ctx, query, uc.registry.Tools(), systemPrompt)
	if err != nil {
		errutil.Log(ctx, err, "receptionist model invocation failed")
		return apologyMessage, nil
	}

	if len(reply.ToolCalls) > 0 {
		result := uc.registry.Dispatch(ctx, reply.ToolCalls[0])
		if result.Success {
			return "[System: Action Performed] " + result.Message, nil
		}
		return "[System: Action Failed] " + result.Message, nil
	}

	if reply.Text == "" {
		return noResponseMessage, nil
	}
	return reply.Text, nil
}

// SummarizeNotes condenses free-form customer notes into a short summary.
func (uc *UseCases) SummarizeNotes(ctx context.Context, notes string) (string, error) {
	if notes == "" {
		return "", goerr.New("notes are required")
	}

	prompt := fmt.Sprintf("Summarize these notes: %q", notes)
	reply, err := uc.model.Invoke(ctx, prompt, nil, "")
	if err != nil {
		return "", goerr.Wrap(err, "failed to summarize notes")
	}
	if reply.Text == "" {
		return noResponseMessage, nil
	}
	return reply.Text, nil
}
