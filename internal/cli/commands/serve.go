package commands

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/google/vsaq/internal/config"
	"github.com/google/vsaq/internal/server"
	"github.com/google/vsaq/internal/ui"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	config    *config.Config
	handler   *server.Handler
	formatter *ui.Formatter
}

// NewServeCommand creates a new ServeCommand
func NewServeCommand(cfg *config.Config, handler *server.Handler, formatter *ui.Formatter) *ServeCommand {
	return &ServeCommand{
		config:    cfg,
		handler:   handler,
		formatter: formatter,
	}
}

// Execute runs the command. An optional positional argument overrides the
// listen port; a malformed port fails before binding.
func (sc *ServeCommand) Execute(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		port, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid port %q: %w", args[0], err)
		}
		sc.config.Port = port
	}

	addr := sc.config.Addr()
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	sc.formatter.PrintBanner()

	srv := &http.Server{Handler: sc.handler}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
