package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/flashdeck/internal/deck"
	"github.com/pdiddy/flashdeck/pkg/types"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage the local deck library (save, list, show, delete, export)",
	Long: `Deck manages a local SQLite library of saved decks so a set of cards can
be reprinted or tweaked later without reparsing the source.`,
}

// libraryStore opens the library using the --data-dir flag or the
// library.data_dir config entry.
func libraryStore(cmd *cobra.Command) (*deck.Store, error) {
	dataDir, _ := cmd.Flags().GetString("data-dir")
	if dataDir == "" {
		dataDir = viper.GetString("library.data_dir")
	}
	if dataDir == "" {
		dataDir = "library"
	}
	return deck.NewStore(types.LibraryConfig{DataDir: dataDir})
}

var deckSaveCmd = &cobra.Command{
	Use:   "save <deck.yaml|file>",
	Short: "Save a deck into the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := loadDeck(cmd, args[0])
		if err != nil {
			return err
		}

		store, err := libraryStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.SaveDeck(cmd.Context(), d); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved deck %q (%d cards)\n", d.Name, len(d.Cards))
		return nil
	},
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved decks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := libraryStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		infos, err := store.ListDecks(cmd.Context())
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			fmt.Println("The library is empty. Save a deck with: flashdeck deck save <deck.yaml>")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSUBJECT\tLESSON\tCARDS\tUPDATED")
		for _, info := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
				info.Name, info.Subject, info.Lesson, info.CardCount,
				info.UpdatedAt.Local().Format(time.DateTime))
		}
		return w.Flush()
	},
}

var deckShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved deck's cards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := libraryStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		d, err := store.GetDeck(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, c := range d.Cards {
			fmt.Printf("%s\t%s\n", c.Front, c.Back)
		}
		return nil
	},
}

var deckDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a deck from the library",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := libraryStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteDeck(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Deleted deck %q\n", args[0])
		return nil
	},
}

var deckExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Export a saved deck back to an editable deck file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := libraryStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		d, err := store.GetDeck(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = d.Name + ".yaml"
		}
		summary := deck.Summary{Source: "library", Rows: len(d.Cards), Timestamp: time.Now().UTC()}
		if err := deck.WriteFile(out, d, summary); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Exported deck %q to %s\n", d.Name, out)
		return nil
	},
}

func init() {
	deckCmd.PersistentFlags().String("data-dir", "", "library directory (default: ./library)")

	addInputFlags(deckSaveCmd)
	addDeckFlags(deckSaveCmd)
	deckExportCmd.Flags().String("out", "", "deck file to write (default: <name>.yaml)")

	deckCmd.AddCommand(deckSaveCmd, deckListCmd, deckShowCmd, deckDeleteCmd, deckExportCmd)
	rootCmd.AddCommand(deckCmd)
}
