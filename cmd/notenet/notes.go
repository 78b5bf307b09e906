package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bobinette/notenet/clients/notes"
)

func init() {
	NotesCommand.AddCommand(&NotesListCommand)
	NotesCommand.AddCommand(&NotesGetCommand)
	NotesCommand.AddCommand(&NotesCreateCommand)
	NotesCommand.AddCommand(&NotesUpdateCommand)
	NotesCommand.AddCommand(&NotesDeleteCommand)

	RootCmd.AddCommand(&NotesCommand)
}

var NotesCommand = cobra.Command{
	Use:   "notes",
	Short: "Manage the notes of your tenant",
	Long:  "List, read, create, update and delete the notes of your tenant",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var NotesListCommand = cobra.Command{
	Use:   "list",
	Short: "List the notes",
	Long:  "List the notes of your tenant, one JSON object per line",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openSession(cmd.Context())
		defer closeStore()
		if err != nil {
			return err
		}

		if err := svc.requireSession(); err != nil {
			return err
		}
		if err := svc.dashboard.Load(cmd.Context()); err != nil {
			return err
		}

		list := svc.dashboard.Notes()
		if len(list) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No notes yet. Create your first note!")
			return nil
		}

		for _, note := range list {
			if err := printJSON(cmd, note); err != nil {
				return err
			}
		}
		return nil
	},
}

var NotesGetCommand = cobra.Command{
	Use:   "get <id>",
	Short: "Show a note",
	Long:  "Show a note based on its id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openSession(cmd.Context())
		defer closeStore()
		if err != nil {
			return err
		}

		if err := svc.requireSession(); err != nil {
			return err
		}

		note, err := svc.notes.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, note)
	},
}

var NotesCreateCommand = cobra.Command{
	Use:   "create <title> <content>",
	Short: "Create a note",
	Long:  "Create a note. On the free plan the number of notes of a tenant is limited",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openSession(cmd.Context())
		defer closeStore()
		if err != nil {
			return err
		}

		if err := svc.requireSession(); err != nil {
			return err
		}

		note, err := svc.dashboard.Submit(cmd.Context(), arg(args, 0), arg(args, 1))
		if err != nil {
			if notes.IsLimitReached(err) {
				if prompt := svc.dashboard.UpgradePrompt(); prompt.Show {
					fmt.Fprintln(cmd.OutOrStdout(), prompt.Message)
					if prompt.CanUpgrade {
						fmt.Fprintln(cmd.OutOrStdout(), "Run `notenet upgrade` to upgrade to Pro.")
					}
				}
			}
			return err
		}

		return printJSON(cmd, note)
	},
}

var NotesUpdateCommand = cobra.Command{
	Use:   "update <id> <title> <content>",
	Short: "Update a note",
	Long:  "Replace the title and the content of a note",
	Args:  cobra.RangeArgs(1, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openSession(cmd.Context())
		defer closeStore()
		if err != nil {
			return err
		}

		if err := svc.requireSession(); err != nil {
			return err
		}

		note, err := svc.notes.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		svc.dashboard.Edit(note)
		note, err = svc.dashboard.Submit(cmd.Context(), arg(args, 1), arg(args, 2))
		if err != nil {
			return err
		}

		return printJSON(cmd, note)
	},
}

var NotesDeleteCommand = cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete notes",
	Long:  "Delete notes based on their ids",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, closeStore, err := openSession(cmd.Context())
		defer closeStore()
		if err != nil {
			return err
		}

		if err := svc.requireSession(); err != nil {
			return err
		}

		for _, id := range args {
			if err := svc.dashboard.Delete(cmd.Context(), id); err != nil {
				return err
			}
			logger.Printf("note %s deleted", id)
		}
		return nil
	},
}
