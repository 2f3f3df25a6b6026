package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mark/elkgo/pkg/elk"
)

var algorithmsCmd = &cobra.Command{
	Use:   "algorithms",
	Short: "List known layout algorithms, options, and categories",
	Long:  "Print every algorithm id, layout option, and category this engine knows about.",
	Run: func(cmd *cobra.Command, args []string) {
		d := elk.New()

		fmt.Println("Algorithms:")
		for _, a := range d.KnownAlgorithms() {
			fmt.Printf("  %s\n", a.ID)
		}

		fmt.Println("\nCategories:")
		for _, c := range d.KnownCategories() {
			fmt.Printf("  %s: %v\n", c.Name, c.Algorithms)
		}

		fmt.Println("\nOptions:")
		for _, o := range d.KnownOptions() {
			fmt.Printf("  %s (%s)\n", o.ID, o.Kind)
		}
	},
}
