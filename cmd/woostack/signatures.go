package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hexlane/woostack/internal/models"
	"github.com/hexlane/woostack/internal/signatures"
)

var signaturesCmd = &cobra.Command{
	Use:   "signatures",
	Short: "List and validate the signature table",
	Long: `Compiles the signature table (the embedded default, or the file given
with --signatures) and lists its entries. A table that fails to compile
is reported with the offending entry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadSignaturesForListing()
		if err != nil {
			return fmt.Errorf("signature table invalid: %w", err)
		}

		fmt.Printf("Signature table: %d entries\n\n", table.Len())
		for _, entry := range table.Entries() {
			kind := "plugin"
			if entry.Kind == models.KindTheme {
				kind = "theme "
			}
			mode := "literal"
			if !entry.Parsed.IsLiteral {
				mode = "regex"
			}
			fmt.Printf("[%s] %-45s %-7s %s\n", kind, entry.Name, mode, entry.Pattern)
		}
		return nil
	},
}

func loadSignaturesForListing() (*signatures.Table, error) {
	if signaturesPath != "" {
		return signatures.Load(signaturesPath)
	}
	return signatures.Default()
}
