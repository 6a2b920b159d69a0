package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.tipo.dev/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tipo",
	Short: "Compiler tools for the Tipo language",
	Long: `Tipo is a small declaration language with four value types:
int, float, string and bool.

Commands:
  tokens   - Scan a source file and list its tokens
  parse    - Parse a source file and print the syntax tree
  ir       - Lower a source file to LLVM IR
  demo     - Run the built-in example programs
  watch    - Recompile sources as they change`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (.toml, .yaml or .yml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// readSource returns the contents of the file named in args, or of
// stdin when the name is "-" or input is piped in.
func readSource(args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}

		return string(data), nil
	}

	stat, _ := os.Stdin.Stat()
	if len(args) == 0 && (stat.Mode()&os.ModeCharDevice) != 0 {
		return "", fmt.Errorf("no input file given")
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}

	return string(data), nil
}
