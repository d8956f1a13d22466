package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"videoskill/internal/domain"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke [file]",
	Short: "Answer one request envelope read from a file or stdin",
	Long: `Read a JSON request envelope from file (or stdin when file is
omitted or "-") and print the response envelope.

Example:
  echo '{"request":{"type":"LaunchRequest","locale":"ja-JP"}}' | skill invoke`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInvoke,
}

func runInvoke(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read envelope: %w", err)
	}
	env, err := domain.ParseEnvelope(data)
	if err != nil {
		return err
	}

	deps, err := wire()
	if err != nil {
		return err
	}
	defer deps.logger.Sync()

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(deps.skill.Handle(cmd.Context(), env))
}
