package cli

import (
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/term"

	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/agent/api"
	"github.com/IvanChernomyrdin/go-classic-ciphers/internal/shared/memory"
)

// для тестов
var (
	NewAPIClient      = api.NewClient
	SaveHistoryToFile = memory.SaveToFile
	StdinIsTerminal   = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	Now               = func() time.Time { return time.Now().UTC() }
	NewID             = uuid.NewString
)
