package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// HostShutdown powers off the machine the bot runs on.
type HostShutdown struct {
	command []string
	logger  *slog.Logger
}

func NewHostShutdown(command []string, logger *slog.Logger) *HostShutdown {
	return &HostShutdown{
		command: command,
		logger:  logger.With("component", "host"),
	}
}

func (h *HostShutdown) Run(ctx context.Context) error {
	if len(h.command) == 0 {
		return errors.New("no shutdown command configured")
	}

	h.logger.Warn("shutting down host", "command", strings.Join(h.command, " "))

	out, err := exec.CommandContext(ctx, h.command[0], h.command[1:]...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("run shutdown command: %w: %s", err, strings.TrimSpace(string(out)))
	}
	return nil
}
