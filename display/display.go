package display

import (
	"context"
	"fmt"
	"net"
	"os/exec"
	"time"

	"github.com/StrayDragon/guibot/internal"
)

const (
	x11SocketDir = "/tmp/.X11-unix"
	pollInterval = 100 * time.Millisecond
)

// Server is a headless X server backed by a virtual framebuffer. It is
// started detached and never stopped; the surrounding CI container is
// disposable.
type Server struct {
	Display int
	Screen  string
}

func (s Server) Addr() string {
	return fmt.Sprintf(":%d", s.Display)
}

func (s Server) SocketPath() string {
	return fmt.Sprintf("%s/X%d", x11SocketDir, s.Display)
}

// Start launches Xvfb in the background and releases the process so it
// outlives the provisioner.
func (s Server) Start() error {
	internal.Log.Noticef("Starting virtual display %s", s.Addr())

	cmd := exec.Command("Xvfb", s.Addr(), "-screen", "0", s.Screen)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("error starting Xvfb on display %s: %v", s.Addr(), err)
	}

	return cmd.Process.Release()
}

// WaitReady polls the X11 socket until the server accepts a connection,
// replacing a blind startup sleep with an actual readiness check.
func (s Server) WaitReady(ctx context.Context) error {
	return waitSocket(ctx, s.SocketPath())
}

func waitSocket(ctx context.Context, socket string) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		conn, err := net.Dial("unix", socket)
		if err == nil {
			return conn.Close()
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("display socket %s not accepting connections: %w", socket, ctx.Err())
		case <-ticker.C:
		}
	}
}
