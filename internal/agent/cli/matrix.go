package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/cipher"
)

// NewMatrixCmd создаёт команду, печатающую матрицу Playfair для ключа.
//
// Пример:
//
//	ciphers matrix --key monarchy
//
//	M O N A R
//	C H Y B D
//	E F G I K
//	L P Q S T
//	U V W X Z
func NewMatrixCmd(app *App) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:          "matrix",
		Short:        "Показать матрицу Playfair 5x5 для ключа",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []string
			if app.Remote {
				var err error
				rows, err = NewAPIClient(app.ServerURL).Matrix(key)
				if err != nil {
					return err
				}
			} else {
				m, err := cipher.BuildPlayfairMatrix(key)
				if err != nil {
					return err
				}
				rows = m.Rows()
			}

			out := cmd.OutOrStdout()
			for _, row := range rows {
				fmt.Fprintln(out, strings.Join(strings.Split(row, ""), " "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&key, "key", "k", "", "playfair key")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}
