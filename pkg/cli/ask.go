package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/nexus-lab/frontdesk/pkg/agent/tool"
	"github.com/nexus-lab/frontdesk/pkg/agent/tool/core"
	"github.com/nexus-lab/frontdesk/pkg/cli/config"
	"github.com/nexus-lab/frontdesk/pkg/domain/types"
	"github.com/nexus-lab/frontdesk/pkg/service/grounding"
	"github.com/nexus-lab/frontdesk/pkg/service/knowledge"
	"github.com/nexus-lab/frontdesk/pkg/service/llm"
	"github.com/nexus-lab/frontdesk/pkg/usecase"
	"github.com/nexus-lab/frontdesk/pkg/utils/safe"
)

func cmdAsk() *cli.Command {
	var tenantID string
	var storeCfg config.Store
	var geminiCfg config.Gemini

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "tenant",
			Usage:       "Tenant ID to answer as (defaults to the global tenant)",
			Sources:     cli.EnvVars("FRONTDESK_TENANT"),
			Destination: &tenantID,
		},
	}
	flags = append(flags, storeCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)

	return &cli.Command{
		Name:      "ask",
		Aliases:   []string{"a"},
		Usage:     "Ask the receptionist a single question",
		ArgsUsage: "<question>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if query == "" {
				return goerr.New("question is required")
			}

			db, err := storeCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize domain store")
			}
			defer safe.Close(ctx, db)

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}

			knowledgeSvc := knowledge.New(db)
			defer knowledgeSvc.Close()

			registry := tool.NewRegistry(core.New(db)...)
			uc := usecase.New(db, llm.New(llmClient), grounding.New(knowledgeSvc), registry)

			ctx = tool.WithUpdate(ctx, func(_ context.Context, message string) {
				color.New(color.Faint).Println(message)
			})

			answer, err := uc.Respond(ctx, query, types.TenantID(tenantID))
			if err != nil {
				return err
			}

			color.New(color.FgCyan, color.Bold).Println("Receptionist:")
			fmt.Println(answer)
			return nil
		},
	}
}
