package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.tipo.dev/pkg"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a source file and print the syntax tree",
	Long: `Parses a Tipo source file and prints one line per declaration.
Parsing stops at the first error.

Examples:
  tipo parse main.tp
  echo "int x = 42;" | tipo parse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	src, err := readSource(args)
	if err != nil {
		return err
	}

	stmts, err := tipo.NewCompiler().Compile(src)
	if err != nil {
		return err
	}

	indent := strings.Repeat(" ", cfg.Output.Indent)
	for _, stmt := range stmts {
		fmt.Printf("%s%s\n", indent, stmt)
	}

	return nil
}
