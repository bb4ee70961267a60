package cmd

import (
	"fmt"
	"os"
	"strings"

	"hvac-matcher/feature/validate"

	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [model]",
	Short: "Validate a model number against the master schema",
	Long: `Parses a model number and checks the decoded specification against its
family's capacity, heating and accessory constraints.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := mustSetup()

		master, err := loadMaster(cmd.Context(), cfg, nil, logg)
		if err != nil {
			fmt.Printf("Failed to load master schema: %v\n", err)
			os.Exit(1)
		}

		svc := validate.NewService(master, logg)
		report, err := svc.CheckModel(args[0])
		if err != nil {
			fmt.Printf("Failed to parse model: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("\n--- Validation Report ---")
		fmt.Printf("Model:       %s\n", args[0])
		fmt.Printf("Family:      %s\n", report.Family)
		if report.Spec.Tons > 0 {
			fmt.Printf("Capacity:    %.1f t\n", report.Spec.Tons)
		}
		if report.Spec.HeatingBTU > 0 {
			fmt.Printf("Gas heat:    %d BTU\n", report.Spec.HeatingBTU)
		}

		statusColor := "\033[32m" // Green
		status := "VALID"
		if !report.Valid {
			statusColor = "\033[31m" // Red
			status = "INVALID"
		}
		fmt.Printf("Status:      %s%s\033[0m\n", statusColor, status)

		if len(report.Diagnostics) > 0 {
			fmt.Println("\nFindings:")
			for _, d := range report.Diagnostics {
				fmt.Printf("- [%s] %s: %s\n", strings.ToUpper(string(d.Severity)), d.Field, d.Message)
			}
		}
		fmt.Println("-------------------------")

		if !report.Valid {
			os.Exit(1)
		}
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)
}
