package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"hvac-matcher/core/unit"
	"hvac-matcher/feature/build"

	"github.com/spf13/cobra"
)

var (
	buildFamily      string
	buildTons        float64
	buildGasBTU      int
	buildElectricKW  float64
	buildCodes       []string
	buildAccessories []string
	buildReplace     bool
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a model number from a family and unit attributes",
	Long: `Resolves every schema position for the given family from exact codes
(--code name=value), numeric values (--tons, --gas-btu, --kw) and accessory
selections (--accessory name=code), and prints the assembled model number.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := mustSetup()

		master, err := loadMaster(cmd.Context(), cfg, nil, logg)
		if err != nil {
			fmt.Printf("Failed to load master schema: %v\n", err)
			os.Exit(1)
		}

		req := build.Request{
			Family:         buildFamily,
			Tons:           buildTons,
			GasBTU:         buildGasBTU,
			ElectricHeatKW: buildElectricKW,
			Codes:          parsePairs(buildCodes),
			Accessories:    parsePairs(buildAccessories),
		}
		if buildReplace {
			req.MergeMode = build.MergeReplace
		}

		result, err := build.NewBuilder(master).Build(req)
		if err != nil {
			if unit.IsSchemaViolation(err) {
				fmt.Printf("Schema violation: %v\n", err)
			} else {
				fmt.Printf("Build failed: %v\n", err)
			}
			os.Exit(1)
		}

		fmt.Println("\n--- Model Build ---")
		fmt.Printf("Model:          %s\n", result.Model)
		fmt.Printf("Family:         %s\n", result.Family)
		if result.CapacityMatch != "" {
			fmt.Printf("Capacity match: %s\n", result.CapacityMatch)
		}
		if result.HeatingMatch != "" {
			fmt.Printf("Heating match:  %s\n", result.HeatingMatch)
		}
		for _, d := range result.Diagnostics {
			fmt.Printf("%s: %s (%s)\n", strings.ToUpper(string(d.Severity)), d.Message, d.Field)
		}
		fmt.Println("-------------------")

		out, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(out))
	},
}

// parsePairs turns repeated name=value flags into a map. Malformed pairs
// are skipped.
func parsePairs(pairs []string) map[string]string {
	if len(pairs) == 0 {
		return nil
	}
	m := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		if !ok || name == "" {
			continue
		}
		m[name] = value
	}
	return m
}

func init() {
	buildCmd.Flags().StringVar(&buildFamily, "family", "", "family code (e.g. DHG)")
	buildCmd.Flags().Float64Var(&buildTons, "tons", 0, "cooling capacity in tons")
	buildCmd.Flags().IntVar(&buildGasBTU, "gas-btu", 0, "gas heating input in BTU/h")
	buildCmd.Flags().Float64Var(&buildElectricKW, "kw", 0, "electric heat strip size in kW")
	buildCmd.Flags().StringArrayVar(&buildCodes, "code", nil, "exact position code as name=value (repeatable)")
	buildCmd.Flags().StringArrayVar(&buildAccessories, "accessory", nil, "accessory selection as name=code (repeatable)")
	buildCmd.Flags().BoolVar(&buildReplace, "replace", false, "reset unsupplied accessories to their neutral codes")
	_ = buildCmd.MarkFlagRequired("family")
	RootCmd.AddCommand(buildCmd)
}
