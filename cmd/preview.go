package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/abhisek/lexiz/internal/contentgen"
	"github.com/abhisek/lexiz/internal/llm"
	"github.com/abhisek/lexiz/internal/word"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated quiz content for a word (no database)",
	Long: `Generate and interactively answer story or cloze content for one word.

This is a stateless developer tool — no database, no scoring, no events.
Useful for evaluating passage quality and prompt changes.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("word", "", "Target word text (required)")
	previewCmd.Flags().String("translation", "", "Word translation (required)")
	previewCmd.Flags().String("lang", "de", "Language code")
	previewCmd.Flags().String("kind", "story", "Content kind: story or cloze")
	previewCmd.Flags().Int("count", 3, "Number of passages to generate")
	_ = previewCmd.MarkFlagRequired("word")
	_ = previewCmd.MarkFlagRequired("translation")
}

func runPreview(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("word")
	translation, _ := cmd.Flags().GetString("translation")
	lang, _ := cmd.Flags().GetString("lang")
	kindVal, _ := cmd.Flags().GetString("kind")
	count, _ := cmd.Flags().GetInt("count")

	var kind contentgen.Kind
	switch strings.ToLower(kindVal) {
	case "story":
		kind = contentgen.KindStory
	case "cloze":
		kind = contentgen.KindCloze
	default:
		return fmt.Errorf("invalid kind %q: must be story or cloze", kindVal)
	}

	// Create LLM provider (no EventRepo — logging skipped).
	ctx := context.Background()
	provider, err := llm.NewProviderFromEnv(ctx, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	gen := contentgen.New(provider, contentgen.DefaultConfig())
	scanner := bufio.NewScanner(os.Stdin)

	w := word.Word{
		ID:           "preview",
		Text:         text,
		Translation:  translation,
		LanguageCode: lang,
	}

	fmt.Printf("Word: %s (%s) = %s\n", text, lang, translation)
	fmt.Printf("Generating %d %s passages...\n\n", count, kindVal)

	var correct int
	for i := 1; i <= count; i++ {
		content, err := gen.Generate(ctx, contentgen.GenerateInput{Word: w, Kind: kind})
		if err != nil {
			fmt.Printf("Passage %d: generation failed: %v\n\n", i, err)
			continue
		}

		fmt.Printf("── Passage %d/%d ──\n", i, count)
		fmt.Println(content.Passage)
		if kind == contentgen.KindStory {
			for j, c := range content.Choices {
				fmt.Printf("  %d) %s\n", j+1, c)
			}
		}

		fmt.Print("\nFill the blank: ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Print("(skipped)\n\n")
			continue
		}

		if strings.EqualFold(answer, content.Answer) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", content.Answer)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, count)
	return nil
}
