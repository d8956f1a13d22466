package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skill",
	Short: "Hello-world video skill",
	Long: `Voice skill answering launch, play-video, help, cancel/stop,
fallback and session-ended requests with localized speech.

Available subcommands:
  lambda - Run as an AWS Lambda function (default deployment)
  serve  - Run as an HTTPS skill endpoint
  invoke - Answer one request envelope read from a file or stdin`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(lambdaCmd, serveCmd, invokeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
