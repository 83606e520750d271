package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wall-jump/internal/games/walljump"
	"github.com/vovakirdan/wall-jump/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the variants and their rules",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeVariants(os.Stdout)
	},
}

// variantRules summarises what sets a variant apart.
func variantRules(v walljump.Variant) string {
	var rules []string
	if v.Pacing == walljump.PacingControlled {
		rules = append(rules, "slow jumps")
	}
	if v.AllowReturn {
		rules = append(rules, "turn back mid-jump")
	}
	if v.AirJump {
		rules = append(rules, "air jumps")
	}
	if v.Climbing {
		rules = append(rules, "climbs to the top")
	}
	if v.WallSizedObstacles {
		rules = append(rules, "wall-sized blocks")
	}
	if !v.RestartOnAction {
		rules = append(rules, "R restarts")
	}
	if len(rules) == 0 {
		return "classic rules"
	}
	return strings.Join(rules, ", ")
}

// writeVariants prints every registered variant with its rules.
func writeVariants(out io.Writer) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tTitle\tRules")
	for _, info := range registry.List() {
		v, ok := walljump.VariantByID(info.ID)
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", v.ID, v.Title, variantRules(v))
	}
	tw.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'walljump play <id>' to play a variant.")
}
