package app

import (
	"fmt"
	"log/slog"

	"github.com/aussiebroadwan/arcade/pkg/cryptox"
	"github.com/aussiebroadwan/arcade/pkg/jwtx"
)

const sessionKeyID = "session"

// InitSessionSigner loads the Ed25519 session key.
//
// With ARCADE_SESSION_KEY_FILE set the key is read from that file, or
// generated and written there on first start, so sessions survive restarts.
// Without it the key is ephemeral.
func InitSessionSigner(cfg Config, logger *slog.Logger) (*jwtx.EdDSASigner, error) {
	var (
		pemKey []byte
		err    error
	)

	if cfg.SessionKeyFile != "" {
		pemKey, err = cryptox.LoadOrCreateEd25519Key(cfg.SessionKeyFile)
		if err != nil {
			return nil, fmt.Errorf("load session key: %w", err)
		}
		logger.Info("session key loaded", "path", cfg.SessionKeyFile)
	} else {
		pemKey, err = cryptox.GenerateEd25519Key()
		if err != nil {
			return nil, fmt.Errorf("generate session key: %w", err)
		}
		logger.Warn("using an ephemeral session key; sessions end on restart")
	}

	return jwtx.NewSignerEdDSA(sessionKeyID, pemKey)
}
