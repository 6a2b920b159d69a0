package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.tipo.dev/pkg"
)

var tokensComments bool

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Scan a source file and list its tokens",
	Long: `Scans a Tipo source file and lists every token with its position.

Examples:
  tipo tokens main.tp
  tipo tokens --comments main.tp
  echo "int x = 42;" | tipo tokens`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().BoolVar(&tokensComments, "comments", false, "Include comment tokens")
}

func runTokens(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	src, err := readSource(args)
	if err != nil {
		return err
	}

	showComments := cfg.Output.Comments
	if cmd.Flags().Changed("comments") {
		showComments = tokensComments
	}

	toks := tipo.Tokenize(src)
	printTokens(toks, showComments)

	if len(toks) == 0 || toks[len(toks)-1].Typ != tipo.TokenEOF {
		fmt.Fprintln(os.Stderr, "note: scanning aborted before the end of input")
	}

	return nil
}

func printTokens(toks []tipo.Token, showComments bool) {
	for _, tok := range toks {
		if tok.Typ == tipo.TokenComment && !showComments {
			continue
		}

		pos := fmt.Sprintf("%d:%d", tok.Line, tok.Column)
		fmt.Printf("  %-8s %-14s %q\n", pos, tok.Typ, tok.Value)
	}
}
