package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.tipo.dev/internal/watch"
	"go.tipo.dev/pkg"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Recompile sources as they change",
	Long: `Watches a directory and reparses every matching source file as
it changes. Stop with Ctrl-C.

Examples:
  tipo watch .
  tipo watch src/`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	fmt.Printf("Watching %s\n", dir)

	c := tipo.NewCompiler()
	return watch.Watch(ctx, dir, cfg.Watch.Extensions, func(path string) error {
		stmts, err := c.CompileFile(path)
		if err != nil {
			return err
		}

		for _, stmt := range stmts {
			fmt.Printf("  %s\n", stmt)
		}

		return nil
	})
}
