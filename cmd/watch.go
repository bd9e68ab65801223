package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phpmod-labs/phpmod/internal"
	"github.com/phpmod-labs/phpmod/refactor"
	"github.com/phpmod-labs/phpmod/scanner"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Re-check PHP files whenever they change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide directory paths")
			os.Exit(1)
		}

		engine, err := refactor.New(cfgFile)
		if err != nil {
			logger.Fatal("Failed to initialize rewrite engine", zap.Error(err))
		}

		for _, dir := range args {
			files, err := scanner.New(dir).Scan()
			if err != nil {
				logger.Fatal("Failed to scan directory", zap.String("dir", dir), zap.Error(err))
			}
			logger.Info("watching directory",
				zap.String("dir", dir),
				zap.Int("php_files", len(files)))
		}

		watcher, err := internal.NewWatcher(engine, args)
		if err != nil {
			logger.Fatal("Failed to create watcher", zap.Error(err))
		}
		if err := watcher.Start(); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		defer watcher.Stop()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
	},
}
