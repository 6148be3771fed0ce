package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/nexus-lab/frontdesk/pkg/cli/config"
	"github.com/nexus-lab/frontdesk/pkg/utils/logging"
	"github.com/nexus-lab/frontdesk/pkg/utils/safe"
)

func cmdMigrate() *cli.Command {
	var storeCfg config.Store

	return &cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Seed absent collections and run the plan catalog migration",
		Flags:   storeCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			// Configure seeds absent collections and runs the plan migration.
			db, err := storeCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize domain store")
			}
			defer safe.Close(ctx, db)

			logging.Default().Info("Migration complete")
			return nil
		},
	}
}
