package provision

import (
	"context"
	"time"

	"github.com/StrayDragon/guibot/display"
)

const displayStartupTimeout = 10 * time.Second

func (p Provisioner) virtualDisplay() error {
	server := display.Server{
		Display: p.Config.Settings.GetDisplay(),
		Screen:  p.Config.Settings.GetScreen(),
	}

	if err := server.Start(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), displayStartupTimeout)
	defer cancel()

	return server.WaitReady(ctx)
}
