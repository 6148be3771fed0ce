package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/nexus-lab/frontdesk/pkg/agent/tool"
	"github.com/nexus-lab/frontdesk/pkg/agent/tool/core"
	"github.com/nexus-lab/frontdesk/pkg/cli/config"
	httpctrl "github.com/nexus-lab/frontdesk/pkg/controller/http"
	"github.com/nexus-lab/frontdesk/pkg/service/grounding"
	"github.com/nexus-lab/frontdesk/pkg/service/importer"
	"github.com/nexus-lab/frontdesk/pkg/service/knowledge"
	"github.com/nexus-lab/frontdesk/pkg/service/llm"
	"github.com/nexus-lab/frontdesk/pkg/usecase"
	"github.com/nexus-lab/frontdesk/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var storeCfg config.Store
	var geminiCfg config.Gemini

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("FRONTDESK_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, storeCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			db, err := storeCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize domain store")
			}
			defer func() {
				if err := db.Close(); err != nil {
					logging.Default().Error("failed to close domain store", "error", err.Error())
				}
			}()

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}

			knowledgeSvc := knowledge.New(db)
			defer knowledgeSvc.Close()

			registry := tool.NewRegistry(core.New(db)...)
			uc := usecase.New(db, llm.New(llmClient), grounding.New(knowledgeSvc), registry)

			srv := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, knowledgeSvc, httpctrl.WithImporter(importer.New(db))),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return goerr.Wrap(err, "HTTP server failed")
			case sig := <-sigCh:
				logging.Default().Info("Shutting down", "signal", sig.String())
			case <-ctx.Done():
				logging.Default().Info("Shutting down", "reason", "context cancelled")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown HTTP server")
			}

			return nil
		},
	}
}
