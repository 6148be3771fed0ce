package interfaces

import (
	"context"

	"github.com/m-mizutani/gollem"
	"github.com/nexus-lab/frontdesk/pkg/domain/model"
)

// ModelClient is the model-invocation boundary: submit a prompt plus an
// optional tool schema and system instruction, receive either text or tool
// calls. Implementations own provider protocol, credentials and model choice;
// the orchestrator treats a call as fail-fast (one attempt, one error path).
type ModelClient interface {
	Invoke(ctx context.Context, prompt string, tools []gollem.Tool, systemPrompt string) (*model.ModelReply, error)
}
