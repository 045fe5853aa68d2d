package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/picongpu-tools/memcalc/memory"
)

var (
	attrDimension int // simulation dimension for the attribute table
	attrPrecision int // precision in bits for the attribute table
)

var attributesCmd = &cobra.Command{
	Use:   "attributes",
	Short: "List the predefined particle attributes and their size in bytes",
	Run: func(cmd *cobra.Command, args []string) {
		if err := printAttributes(cmd.OutOrStdout(), attrDimension, attrPrecision); err != nil {
			logrus.Fatalf("Listing attributes failed: %v", err)
		}
	},
}

func printAttributes(w io.Writer, dimension, precision int) error {
	table, err := memory.PredefinedAttributeSizes(dimension, precision)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "=== Particle Attributes (%dD, %d bit) ===\n", dimension, precision)
	for _, name := range memory.PredefinedAttributeNames() {
		fmt.Fprintf(w, "%-36s: %3d B\n", name, table[name])
	}
	return nil
}

func init() {
	attributesCmd.Flags().IntVar(&attrDimension, "dimension", 3, "Simulation dimension (2 or 3)")
	attributesCmd.Flags().IntVar(&attrPrecision, "precision", memory.DefaultPrecision, "Floating point precision in bits (32 or 64)")
}
