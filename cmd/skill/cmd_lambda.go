package main

import (
	"github.com/spf13/cobra"

	"videoskill/internal/adapters/lambda"
)

var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Run as an AWS Lambda function",
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := wire()
		if err != nil {
			return err
		}
		lambda.NewHandler(deps.skill, deps.logger).Start()
		return nil
	},
}
