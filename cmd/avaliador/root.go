package main

import (
	"github.com/spf13/cobra"

	"github.com/HugeFrog24/cefs-video-grader/internal/config"
)

var (
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:           "avaliador",
	Short:         "Avaliador de vídeos de apresentação do CEFS",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(videosCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", config.DefaultFile, "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override logging.level (debug, info, warn, error)")
}
