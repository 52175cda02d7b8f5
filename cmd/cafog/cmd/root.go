// Package cmd provides CLI command implementations
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Flags for correct and enumerate commands
	glycoformsFile string
	glycationFile  string
	libraryFile    string
	sites          int
	normalize      bool
	graphFormat    string
	sqliteFile     string
	outputFile     string
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "cafog",
	Short: "cafog - correction of glycoform abundances for glycation",
	Long: `cafog corrects measured glycoform abundances for artifactual
non-enzymatic glycation, which converts part of a lower-glycosylation
glycoform population into a higher-glycosylation one during sample
handling.

Given observed glycoform abundances, a measured glycation extent per
added hexose, and an optional glycan library, cafog reconstructs the
abundance each glycoform would have had absent glycation.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(correctCmd)
	rootCmd.AddCommand(enumerateCmd)

	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	// Correct command flags
	correctCmd.Flags().StringVarP(&glycoformsFile, "glycoforms", "f", "", "CSV file containing glycoform abundances (required)")
	correctCmd.Flags().StringVarP(&glycationFile, "glycation", "g", "", "CSV file containing glycation abundances (required)")
	correctCmd.Flags().StringVarP(&libraryFile, "glycan-library", "l", "", "CSV file containing a glycan library")
	correctCmd.Flags().IntVarP(&sites, "sites", "s", 2, "Number of glycosylation sites")
	correctCmd.Flags().BoolVarP(&normalize, "normalize", "n", false, "Rescale corrected abundances to sum to 100")
	correctCmd.Flags().StringVarP(&graphFormat, "graph-format", "o", "", "Graph output format, either 'dot' or 'gexf'")
	correctCmd.Flags().StringVar(&sqliteFile, "sqlite", "", "Write the graph to a SQLite database at this path")
	correctCmd.Flags().StringVar(&outputFile, "out", "", "Write the corrected glycoform CSV here instead of stdout")

	correctCmd.MarkFlagRequired("glycoforms")
	correctCmd.MarkFlagRequired("glycation")

	// Enumerate command flags
	enumerateCmd.Flags().StringVarP(&libraryFile, "glycan-library", "l", "", "CSV file containing a glycan library (required)")
	enumerateCmd.Flags().IntVarP(&sites, "sites", "s", 2, "Number of glycosylation sites")
	enumerateCmd.Flags().StringVar(&outputFile, "out", "", "Write the glycoform CSV here instead of stdout")

	enumerateCmd.MarkFlagRequired("glycan-library")
}

var correctCmd = &cobra.Command{
	Use:   "correct",
	Short: "Correct glycoform abundances for glycation",
	Long: `Correct glycoform abundances for glycation. The corrected glycoform
list is written in CSV format to stdout (or --out).

Examples:
  # Correct with a glycan library and normalize the result
  cafog correct -f glycoforms.csv -g glycation.csv -l glycans.csv -n

  # Additionally export the glycation graph for Graphviz
  cafog correct -f glycoforms.csv -g glycation.csv -o dot`,
	RunE: runCorrect,
}

var enumerateCmd = &cobra.Command{
	Use:   "enumerate",
	Short: "Enumerate the glycoform space of a glycan library",
	Long: `Enumerate all glycoforms that are distinct in monosaccharide
composition for a glycan library and site count, with theoretical
weights and masses, without performing any correction.`,
	RunE: runEnumerate,
}
