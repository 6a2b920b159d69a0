package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.tipo.dev/pkg"
)

var irOutput string

var irCmd = &cobra.Command{
	Use:   "ir [file]",
	Short: "Lower a source file to LLVM IR",
	Long: `Compiles a Tipo source file and emits LLVM IR for it. Every
declaration becomes a global definition.

Examples:
  tipo ir main.tp
  tipo ir -o main.ll main.tp`,
	Args: cobra.MaximumNArgs(1),
	RunE: runIR,
}

func init() {
	rootCmd.AddCommand(irCmd)
	irCmd.Flags().StringVarP(&irOutput, "output", "o", "", "Write the IR to a file instead of stdout")
}

func runIR(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		return err
	}

	out, err := tipo.NewCompiler().EmitIR(src)
	if err != nil {
		return err
	}

	if irOutput == "" {
		fmt.Print(out)
		return nil
	}

	if err := os.WriteFile(irOutput, []byte(out), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", irOutput, err)
	}

	if verbose {
		fmt.Printf("Wrote %s\n", irOutput)
	}

	return nil
}
