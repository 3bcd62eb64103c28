package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/cipher"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/models"
)

// NewEncryptCmd создаёт команду encrypt.
//
// Пример:
//
//	ciphers encrypt --cipher caesar --key 3 --text "Attack"
func NewEncryptCmd(app *App) *cobra.Command {
	return newTransformCmd(app, cipher.Encrypt, "Зашифровать текст")
}

// NewDecryptCmd создаёт команду decrypt.
//
// Пример:
//
//	ciphers decrypt --cipher caesar --key 3 --text "Dwwdfn"
func NewDecryptCmd(app *App) *cobra.Command {
	return newTransformCmd(app, cipher.Decrypt, "Расшифровать текст")
}

// newTransformCmd — общая реализация encrypt/decrypt.
//
// Текст берётся из --text, а если флаг не задан — из STDIN (только если STDIN не терминал).
// Результат печатается в stdout и добавляется в локальную историю.
func newTransformCmd(app *App, dir cipher.Direction, short string) *cobra.Command {
	var (
		kind string
		key  string
		text string
	)

	cmd := &cobra.Command{
		Use:   string(dir),
		Short: short + " (caesar, railfence, transposition, playfair)",
		Long: fmt.Sprintf(`Операция %s выбранным шифром.

Ключ:
  caesar         целое число (сдвиг, может быть отрицательным)
  railfence      целое число >= 2 (количество рельсов)
  transposition  слово (порядок столбцов по алфавиту)
  playfair       слово (матрица 5x5, J = I)

Без --text текст читается из STDIN:
  echo "attack at dawn" | ciphers %s --cipher playfair --key monarchy
`, dir, dir),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("text") {
				in, err := readTextFromStdin(cmd)
				if err != nil {
					return err
				}
				text = in
			}

			var rec models.CipherRecord
			var err error
			if app.Remote {
				rec, err = NewAPIClient(app.ServerURL).Transform(models.TransformRequest{
					Cipher:    kind,
					Direction: string(dir),
					Text:      text,
					Key:       key,
				})
			} else {
				rec, err = transformLocal(app, kind, dir, text, key)
			}
			if err != nil {
				return err
			}

			app.history().Add(rec)
			if err := app.saveHistory(); err != nil {
				return fmt.Errorf("save history: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), rec.ResultText)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "cipher", "c", "", "cipher: caesar | railfence | transposition | playfair")
	cmd.Flags().StringVarP(&key, "key", "k", "", "cipher key")
	cmd.Flags().StringVarP(&text, "text", "t", "", "input text (default: read from STDIN)")
	_ = cmd.MarkFlagRequired("cipher")
	_ = cmd.MarkFlagRequired("key")

	return cmd
}

// transformLocal выполняет операцию движком в процессе и собирает запись истории.
func transformLocal(app *App, kind string, dir cipher.Direction, text, key string) (models.CipherRecord, error) {
	k, err := cipher.ParseKind(kind)
	if err != nil {
		return models.CipherRecord{}, err
	}

	result, err := cipher.Transform(k, dir, text, key)
	app.logger().LogOperation(string(k), string(dir), len(text), len(result), err)
	if err != nil {
		return models.CipherRecord{}, err
	}

	return models.CipherRecord{
		ID:           NewID(),
		OriginalText: text,
		ResultText:   result,
		Key:          key,
		Cipher:       string(k),
		Direction:    string(dir),
		CreatedAt:    Now(),
	}, nil
}

// readTextFromStdin читает весь STDIN; завершающий перевод строки отбрасывается.
func readTextFromStdin(cmd *cobra.Command) (string, error) {
	if StdinIsTerminal() {
		return "", errors.New("--text is required (or pipe text via STDIN)")
	}

	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read text from stdin: %w", err)
	}
	text := strings.TrimRight(string(b), "\r\n")
	if text == "" {
		return "", errors.New("empty text on STDIN")
	}
	return text, nil
}
