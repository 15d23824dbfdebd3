package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/muesli/termenv"
)

func main() {
	host := flag.String("host", "localhost", "address to listen on")
	port := flag.String("port", "23236", "port to listen on")
	keyPath := flag.String("host-key", ".ssh/sixdoku_ed25519", "ssh host key path")
	flag.Parse()

	s, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(*host, *port)),
		wish.WithHostKeyPath(*keyPath),
		wish.WithMiddleware(
			bm.Middleware(teaHandler),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		log.Error("could not start server", "error", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting SSH server", "host", *host, "port", *port)

	go func() {
		if err = s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("could not start server", "error", err)
			done <- nil
		}
	}()

	<-done
	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer func() { cancel() }()
	if err := s.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("could not stop server", "error", err)
	}
}

// forceColorWriter is a custom writer that forces color output
type forceColorWriter struct {
	w io.Writer
}

func (fcw forceColorWriter) Write(p []byte) (n int, err error) {
	return fcw.w.Write(p)
}

func teaHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := s.Pty()

	// Force color output
	lipgloss.SetColorProfile(termenv.ANSI256)

	player := s.User()
	if player == "" {
		player = "anonymous"
	}

	return NewMenuModel(pty.Window.Width, pty.Window.Height, player), []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithOutput(forceColorWriter{s}),
	}
}
