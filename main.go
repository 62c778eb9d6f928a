// emoji-solitaire plays a solitaire table on the current terminal. The same
// table code backs the SSH server in cmd/server; here there is one seat.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/user"
	"time"

	"emoji-solitaire/internal/config"
	"emoji-solitaire/internal/ctxlog"
	"emoji-solitaire/internal/table"

	"github.com/gdamore/tcell/v2"
)

func main() {
	layoutPath := flag.String("layout", "", "Path to an HCL table layout (built-in layout if empty)")
	seed := flag.Int64("seed", 0, "Shuffle seed (random if zero)")
	logPath := flag.String("log", "", "Write debug logs to this file")
	flag.Parse()

	if err := run(*layoutPath, *seed, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(layoutPath string, seed int64, logPath string) error {
	// The terminal belongs to tcell, so logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		out = f
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	layout, err := config.LoadLayout(layoutPath)
	if err != nil {
		return err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	tbl := table.NewServer(layout, rand.New(rand.NewSource(seed)), logger)
	name := "player"
	if u, err := user.Current(); err == nil && u.Username != "" {
		name = u.Username
	}
	sess := table.NewSession(tbl.NextSessionID(), name, screen, layout)
	ctx := ctxlog.With(ctxlog.WithLogger(context.Background(), logger), "player", name)

	tbl.AddSession(ctx, sess)
	defer tbl.RemoveSession(ctx, sess)
	tbl.RunLoop(ctx, sess)
	return nil
}
