package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abhisek/lexiz/internal/store"
	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage the vocabulary list",
}

var wordsAddCmd = &cobra.Command{
	Use:   "add <text> <translation>",
	Short: "Add one word",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, _ := cmd.Flags().GetString("lang")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		rec, err := st.WordRepo().Add(cmd.Context(), args[0], args[1], lang)
		if err != nil {
			return err
		}
		fmt.Printf("Added %q (%s) = %q\n", rec.Text, rec.LanguageCode, rec.Translation)
		return nil
	},
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List words",
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, _ := cmd.Flags().GetString("lang")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		words, err := st.WordRepo().List(cmd.Context(), lang)
		if err != nil {
			return err
		}
		if len(words) == 0 {
			fmt.Println("No words yet.")
			return nil
		}

		fmt.Printf("%-20s %-20s %-6s %-13s %s\n", "WORD", "TRANSLATION", "LANG", "TIER", "SCORE")
		for _, w := range words {
			fmt.Printf("%-20s %-20s %-6s %-13s %d\n",
				w.Text, w.Translation, w.LanguageCode, w.Tier, w.Score)
		}
		return nil
	},
}

var wordsImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import words from a CSV file (text,translation[,language])",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lang, _ := cmd.Flags().GetString("lang")

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open CSV: %w", err)
		}
		defer f.Close()

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		repo := st.WordRepo()
		reader := csv.NewReader(f)
		reader.FieldsPerRecord = -1

		var added, skipped int
		for line := 1; ; line++ {
			row, err := reader.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("read CSV line %d: %w", line, err)
			}
			if len(row) < 2 {
				return fmt.Errorf("CSV line %d: want at least text,translation", line)
			}

			rowLang := lang
			if len(row) >= 3 && strings.TrimSpace(row[2]) != "" {
				rowLang = strings.TrimSpace(row[2])
			}

			_, err = repo.Add(cmd.Context(), strings.TrimSpace(row[0]), strings.TrimSpace(row[1]), rowLang)
			if err != nil {
				// Duplicates are expected on re-import; keep going.
				skipped++
				continue
			}
			added++
		}

		fmt.Printf("Imported %d words (%d skipped).\n", added, skipped)
		return nil
	},
}

func init() {
	wordsAddCmd.Flags().String("lang", "de", "Language code for the word")
	wordsListCmd.Flags().String("lang", "", "Filter by language code")
	wordsImportCmd.Flags().String("lang", "de", "Default language for rows without one")

	wordsCmd.AddCommand(wordsAddCmd)
	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsImportCmd)
}
