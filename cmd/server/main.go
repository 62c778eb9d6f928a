// solitaire-server runs a shared solitaire table over SSH. Everyone who
// connects plays the same deal. Build:
//
//	go build -o solitaire-server ./cmd/server
//
// Usage:
//
//	./solitaire-server [--port 2222] [--key server_host_key] [--layout table.hcl]
//
// Settings may also come from SOLITAIRE_PORT, SOLITAIRE_HOST_KEY,
// SOLITAIRE_LAYOUT, SOLITAIRE_LOG_LEVEL and SOLITAIRE_SEED; flags win.
//
// Connect with:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	mathrand "math/rand"
	"os"
	"time"

	"emoji-solitaire/internal/config"
	"emoji-solitaire/internal/ctxlog"
	internalssh "emoji-solitaire/internal/ssh"
	"emoji-solitaire/internal/table"

	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	flag.IntVar(&cfg.Port, "port", cfg.Port, "SSH server port")
	flag.StringVar(&cfg.HostKey, "key", cfg.HostKey, "Path to the PEM-encoded host key (auto-generated if absent)")
	flag.StringVar(&cfg.Layout, "layout", cfg.Layout, "Path to an HCL table layout (built-in layout if empty)")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn or error")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Shuffle seed (random if zero)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	layout, err := config.LoadLayout(cfg.Layout)
	if err != nil {
		logger.Error("load layout", "path", cfg.Layout, "err", err)
		os.Exit(1)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	signer, err := loadOrCreateHostKey(logger, cfg.HostKey)
	if err != nil {
		logger.Error("host key", "path", cfg.HostKey, "err", err)
		os.Exit(1)
	}
	tbl := table.NewServer(layout, mathrand.New(mathrand.NewSource(seed)), logger)

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: func(s gossh.Session) {
			handleSession(tbl, logger, s)
		},
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// Any client may sit down; there is no authentication.
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("solitaire SSH server listening", "port", cfg.Port, "seed", seed)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// for the duration of the connection so the SSH session stays open.
func handleSession(tbl *table.Server, logger *slog.Logger, s gossh.Session) {
	screen, err := internalssh.NewScreen(s)
	if errors.Is(err, internalssh.ErrNoPTY) {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	defer screen.Fini()

	id := tbl.NextSessionID()
	name := s.User()
	if name == "" {
		name = fmt.Sprintf("Player %d", id)
	}
	ctx := ctxlog.With(ctxlog.WithLogger(s.Context(), logger),
		"session", id, "player", name, "remote", s.RemoteAddr().String())

	sess := table.NewSession(id, name, screen, tbl.Layout())
	tbl.AddSession(ctx, sess)
	defer tbl.RemoveSession(ctx, sess)
	tbl.RunLoop(ctx, sess)
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(logger *slog.Logger, path string) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", "path", path)
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", "path", path)
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persist for next run (non-fatal if it fails).
	if pemBlock, err := xssh.MarshalPrivateKey(key, "solitaire server"); err == nil {
		if err := os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600); err != nil {
			logger.Warn("could not save host key", "path", path, "err", err)
		}
	}
	return signer, nil
}
