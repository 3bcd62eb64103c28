package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/models"
)

// NewHistoryCmd создаёт команду просмотра истории операций.
//
// Без --remote показывает локальную историю (~/.ciphers/history.json),
// с --remote — историю сервера.
//
// Подкоманды:
//
//	history show <id>    одна запись полностью
//	history delete <id>  удалить запись
//	history clear        очистить историю
func NewHistoryCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:          "history",
		Short:        "Последние операции, новые первыми",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var records []models.CipherRecord
			if app.Remote {
				var err error
				records, err = NewAPIClient(app.ServerURL).History(limit)
				if err != nil {
					return err
				}
			} else {
				records = app.history().List(limit)
			}

			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "history is empty")
				return nil
			}
			return printRecords(cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "max records (0 = all local / server default)")

	cmd.AddCommand(newHistoryShowCmd(app))
	cmd.AddCommand(newHistoryDeleteCmd(app))
	cmd.AddCommand(newHistoryClearCmd(app))

	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "show <id>",
		Short:        "Показать одну запись истории",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rec models.CipherRecord
			var err error
			if app.Remote {
				rec, err = NewAPIClient(app.ServerURL).GetRecord(args[0])
			} else {
				rec, err = app.history().Get(args[0])
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"id=%s\ncipher=%s\ndirection=%s\nkey=%s\ncreated_at=%s\ninput=%s\noutput=%s\n",
				rec.ID, rec.Cipher, rec.Direction, rec.Key,
				rec.CreatedAt.Format("2006-01-02 15:04:05"), rec.OriginalText, rec.ResultText,
			)
			return nil
		},
	}
}

func newHistoryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "delete <id>",
		Short:        "Удалить запись истории",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Remote {
				if err := NewAPIClient(app.ServerURL).DeleteRecord(args[0]); err != nil {
					return err
				}
			} else {
				if err := app.history().Delete(args[0]); err != nil {
					return err
				}
				if err := app.saveHistory(); err != nil {
					return fmt.Errorf("save history: %w", err)
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func newHistoryClearCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:          "clear",
		Short:        "Очистить историю",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Remote {
				if err := NewAPIClient(app.ServerURL).ClearHistory(); err != nil {
					return err
				}
			} else {
				app.history().Clear()
				if err := app.saveHistory(); err != nil {
					return fmt.Errorf("save history: %w", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
			return nil
		},
	}
}

// printRecords печатает таблицу: ID, время, шифр, направление, ключ, вход -> выход.
func printRecords(w io.Writer, records []models.CipherRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tCIPHER\tDIRECTION\tKEY\tTEXT")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s -> %s\n",
			r.ID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.Cipher,
			r.Direction,
			r.Key,
			shorten(r.OriginalText, 32),
			shorten(r.ResultText, 32),
		)
	}
	return tw.Flush()
}

// shorten обрезает строку до n рун с многоточием.
func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
