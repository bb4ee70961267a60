package cmd

import (
	"fmt"
	"os"
	"strings"

	"hvac-matcher/feature/build"

	"github.com/spf13/cobra"
)

// familiesCmd represents the families command
var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List the buildable families in the master schema",
	Long:  `Prints every family defined by the master schema with its system type and position layout.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg := mustSetup()

		master, err := loadMaster(cmd.Context(), cfg, nil, logg)
		if err != nil {
			fmt.Printf("Failed to load master schema: %v\n", err)
			os.Exit(1)
		}

		families := build.NewService(master, logg).Families()

		fmt.Printf("\n--- Families (%d) ---\n", len(families))
		for _, f := range families {
			fmt.Printf("%-4s %-28s %-14s %s\n",
				f.Code, f.Label, f.SystemType, strings.Join(f.Positions, " "))
		}
		fmt.Println("---------------------")
	},
}

func init() {
	RootCmd.AddCommand(familiesCmd)
}
