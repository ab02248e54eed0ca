package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

const (
	commandName = "setdemo"
	helpShort   = "Run the store filter simulation over the three set kinds"
	helpLong    = `Run the store filter simulation: brands kept in a linked set, sizes kept
in a fixed capacity set, the user's favourite filters kept in a persistent set, and a
search combining three product filters by intersection.

Flags default to the environment, a .env file in the working directory is honoured.`
	helpExample = `
setdemo
setdemo --backing atomic --path /tmp/favs.json
SETDEMO_BACKING=redis SETDEMO_REDIS_HOST=localhost SETDEMO_REDIS_PORT=6379 setdemo --dump
SETDEMO_MINIO_ACCESS_KEY=minio SETDEMO_MINIO_SECRET_KEY=minio123 setdemo --backing minio
`
)

func newCmd() *cobra.Command {
	cfg := defaultConfig()
	cmd := &cobra.Command{
		Use:          commandName,
		Short:        helpShort,
		Long:         helpLong,
		Example:      helpExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
	}
	cfg.bindFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), cmd.OutOrStdout(), cfg)
	}
	return cmd
}

func main() {
	if err := newCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
