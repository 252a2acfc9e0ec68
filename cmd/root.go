package cmd

import (
	"fmt"

	zap "github.com/Laisky/zap"
	"github.com/spf13/cobra"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:   "gbsearch",
	Short: "benchmark & verification harness for go-bsearch",
	Long:  `benchmark & verification harness for go-bsearch`,
	Args:  NoExtraArgs,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			if l, err := zap.NewDevelopment(); err == nil {
				logger = l
			}
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		_ = logger.Sync()
	}()

	if err := rootCmd.Execute(); err != nil {
		logger.Panic("parse command line arguments", zap.Error(err))
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "debug")

	var err error
	if logger, err = zap.NewProduction(); err != nil {
		panic(err)
	}
}

// NoExtraArgs make sure every args has been processed
//
// do not allow any un processed args
func NoExtraArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unknown args `%v`", args)
	}

	return nil
}
