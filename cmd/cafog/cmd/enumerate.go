package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/glycoproteomics/cafog/pkg/core"
	"github.com/glycoproteomics/cafog/pkg/glycoprotein"
)

func runEnumerate(cmd *cobra.Command, args []string) error {
	glycans, err := readLibrary(libraryFile)
	if err != nil {
		return err
	}
	gp := glycoprotein.New(sites, glycans)

	var w io.Writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"glycoform", "weight", "mass", "composition"}); err != nil {
		return fmt.Errorf("failed to write glycoform list: %w", err)
	}
	for _, gf := range gp.Glycoforms() {
		row := []string{
			gf.Name,
			strconv.FormatFloat(gf.Abundance, 'f', 4, 64),
			strconv.FormatFloat(core.GlycanMass(gf.Composition), 'f', 4, 64),
			gf.Composition.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write glycoform list: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write glycoform list: %w", err)
	}
	return nil
}
