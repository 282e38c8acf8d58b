package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartpantry/pantry/types"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage saved recipe notes",
}

var noteContent string

var notesAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Save a recipe note",
	Long: `Save a recipe note. Notes are not edited in place: to change one,
remove it and add it again.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()
		if err := requireAuth(p); err != nil {
			return err
		}

		note, err := p.AddNote(args[0], noteContent)
		if err != nil {
			return err
		}
		fmt.Printf("Saved note %q.\n", note.Title)
		return nil
	},
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved recipe notes",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()
		if err := requireAuth(p); err != nil {
			return err
		}

		notes, err := p.ListNotes()
		if err != nil {
			return err
		}
		return render(notes,
			[]string{"ID", "TITLE", "CONTENT"},
			func(n types.RecipeNote) []string {
				return []string{shortID(n.ID), n.Title, n.Content}
			})
	},
}

var notesRemoveCmd = &cobra.Command{
	Use:     "remove <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a recipe note",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openPantry()
		if err != nil {
			return err
		}
		defer p.Close()
		if err := requireAuth(p); err != nil {
			return err
		}

		id, err := resolveNoteID(p, args[0])
		if err != nil {
			return err
		}
		if err := p.RemoveNote(id); err != nil {
			return err
		}
		fmt.Println("Note deleted.")
		return nil
	},
}

func init() {
	notesAddCmd.Flags().StringVarP(&noteContent, "content", "c", "", "Note body, free text")
	notesCmd.AddCommand(notesAddCmd, notesListCmd, notesRemoveCmd)
	rootCmd.AddCommand(notesCmd)
}
