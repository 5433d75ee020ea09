package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/flashdeck/internal/deck"
	"github.com/pdiddy/flashdeck/internal/ocr"
	"github.com/pdiddy/flashdeck/internal/parse"
	"github.com/pdiddy/flashdeck/internal/secrets"
	"github.com/pdiddy/flashdeck/pkg/types"
)

var ocrCmd = &cobra.Command{
	Use:   "ocr <image>",
	Short: "Extract a list from a screenshot via OCR.space",
	Long: `OCR uploads a PNG or JPG of a list to the OCR.space API and prints the
extracted text. With --parse the text goes straight through the list parser
and out as a deck YAML file, the same as "flashdeck parse".

The API key is read from --api-key, the FLASHDECK_OCR_API_KEY environment
variable, the ocr.api_key config entry, or .secrets/ocr-space-api-key.`,
	Args: cobra.ExactArgs(1),
	RunE: runOCR,
}

// ocrConfig assembles the stage configuration from flags, config, and the
// secrets directory.
func ocrConfig(cmd *cobra.Command) types.OCRConfig {
	keyFlag, _ := cmd.Flags().GetString("api-key")
	language, _ := cmd.Flags().GetString("language")

	cfg := types.OCRConfig{
		APIKey:      secrets.Get(loadedSecrets, ocrKeyFile, keyFlag),
		Language:    language,
		MaxImageDim: viper.GetInt("ocr.max_image_dim"),
		MaxRetries:  viper.GetInt("ocr.max_retries"),
	}
	if cfg.APIKey == "" {
		cfg.APIKey = viper.GetString("ocr.api_key")
	}
	if cfg.Language == "" {
		cfg.Language = viper.GetString("ocr.language")
	}
	cfg.UserAgent = "flashdeck/" + version
	return cfg
}

func runOCR(cmd *cobra.Command, args []string) error {
	image, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	client := ocr.New(ocrConfig(cmd))
	text, err := client.ExtractText(cmd.Context(), image, args[0])
	if err != nil {
		return err
	}

	doParse, _ := cmd.Flags().GetBool("parse")
	if !doParse {
		fmt.Print(text)
		return nil
	}

	cards := parse.Text(text)
	if len(cards) == 0 {
		return fmt.Errorf("OCR found no usable rows in %s", args[0])
	}

	d := deckFromFlags(cmd, cards, args[0])
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = d.Name + ".yaml"
	}
	summary := deck.Summary{Source: "ocr", Rows: len(cards), Timestamp: time.Now().UTC()}
	if err := deck.WriteFile(out, d, summary); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Parsed %d card(s) from %s into %s\n", len(cards), args[0], out)
	return nil
}

func init() {
	ocrCmd.Flags().String("api-key", "", "OCR.space API key")
	ocrCmd.Flags().String("language", "", "OCR language code (default: eng)")
	ocrCmd.Flags().Bool("parse", false, "parse the extracted text into a deck file")
	ocrCmd.Flags().String("out", "", "deck file to write with --parse")
	addDeckFlags(ocrCmd)

	rootCmd.AddCommand(ocrCmd)
}
