package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.tipo.dev/pkg"
)

var demoPrograms = []string{
	`int x = 42;`,
	`int x = 42`,
	`x = 42;`,
	`int = 42;`,
	`int 123 = 5;`,
	`int x = "Rahim";`,
	`float pi = true;`,
	`string name = 42;`,
	`bool flag = 123;`,
	`int x = ;`,
	`int y = 5; int z = `,
	`int x 42;`,
	`float pi = "abc";`,
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in example programs",
	Long: `Scans and parses a set of built-in example programs, one per
error the parser can report, and prints the outcome of each.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	for i, src := range demoPrograms {
		fmt.Printf("=== program %d: %s\n", i+1, src)

		toks := tipo.Tokenize(src)
		printTokens(toks, true)

		stmts, err := tipo.Parse(toks)
		if err != nil {
			fmt.Printf("error: %v\n\n", err)
			continue
		}

		for _, stmt := range stmts {
			fmt.Printf("  %s\n", stmt)
		}
		fmt.Println()
	}

	return nil
}
