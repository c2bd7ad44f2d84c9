package lupin

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/adnxy/react-native-lupin/internal/rules"
)

func init() {
	cmd := &cobra.Command{
		Use:   "detectors",
		Short: "List available detectors",
		Run: func(_ *cobra.Command, _ []string) {
			for _, d := range rules.NewRegistry().Detectors() {
				fmt.Printf("%-28s %-8s %s\n", d.ID(), d.Severity(), d.Title())
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
