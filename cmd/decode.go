package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"hvac-matcher/feature/decode"

	"github.com/spf13/cobra"
)

var decodeConfidence float64
var decodeFile string

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode [text]",
	Short: "Decode data-plate text into a canonical specification",
	Long: `Runs the plate decoder over OCR text given as an argument, from a file
(--file) or from stdin, and prints the decoded specification as JSON.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := mustSetup()

		text, err := readPlateText(args)
		if err != nil {
			fmt.Printf("Failed to read plate text: %v\n", err)
			os.Exit(1)
		}

		master, err := loadMaster(cmd.Context(), cfg, nil, logg)
		if err != nil {
			fmt.Printf("Failed to load master schema: %v\n", err)
			os.Exit(1)
		}

		result := decode.NewDecoder(master).Decode(text, decodeConfidence)

		out, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(out))

		if !result.Success {
			os.Exit(1)
		}
	},
}

func readPlateText(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if decodeFile != "" {
		data, err := os.ReadFile(decodeFile)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func init() {
	decodeCmd.Flags().Float64Var(&decodeConfidence, "confidence", 1.0, "OCR confidence in [0,1]")
	decodeCmd.Flags().StringVar(&decodeFile, "file", "", "read plate text from a file")
	RootCmd.AddCommand(decodeCmd)
}
