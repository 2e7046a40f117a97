package player

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"
)

// StopGrace is how long a player gets to exit after SIGTERM before it is killed.
const StopGrace = 2 * time.Second

var ErrNotRunning = errors.New("player not running")

// LineHandler receives every line the player writes to stdout or stderr.
type LineHandler func(line string)

// Handle is a running player owned by exactly one loop.
type Handle interface {
	Send(cmd string) error
	Stop() error
	Running() bool
	Done() <-chan struct{}
}

// Command launches Path with Args followed by the target file or stream.
type Command struct {
	Path   string
	Args   []string
	Logger *slog.Logger
}

func (c Command) Launch(ctx context.Context, target string, onLine LineHandler) (Handle, error) {
	logger := c.Logger
	if logger == nil {
		logger = slog.Default()
	}
	args := append(append([]string{}, c.Args...), target)
	return Start(ctx, logger, c.Path, args, onLine)
}

type Process struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	done   chan struct{}
	logger *slog.Logger

	mu  sync.Mutex
	err error
}

// Start runs the player and scans its output until it exits. Cancelling ctx
// stops the player the same way Stop does.
func Start(ctx context.Context, logger *slog.Logger, path string, args []string, onLine LineHandler) (*Process, error) {
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Cancel = func() error {
		return cmd.Process.Signal(syscall.SIGTERM)
	}
	cmd.WaitDelay = StopGrace

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe: %w", err)
	}

	pr, pw := io.Pipe()
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		return nil, fmt.Errorf("start %s: %w", path, err)
	}

	p := &Process{
		cmd:    cmd,
		stdin:  stdin,
		done:   make(chan struct{}),
		logger: logger.With("player", path, "pid", cmd.Process.Pid),
	}

	scanned := make(chan struct{})
	go func() {
		defer close(scanned)
		scan(pr, onLine)
	}()

	go func() {
		err := cmd.Wait()
		pw.Close()
		<-scanned

		p.mu.Lock()
		p.err = err
		p.mu.Unlock()

		if err != nil {
			p.logger.Debug("player exited", "error", err)
		}
		close(p.done)
	}()

	return p, nil
}

// Send writes one slave-mode command line to the player's stdin.
func (p *Process) Send(cmd string) error {
	if !p.Running() {
		return ErrNotRunning
	}
	if _, err := io.WriteString(p.stdin, cmd+"\n"); err != nil {
		return fmt.Errorf("write command: %w", err)
	}
	return nil
}

// Stop asks the player to terminate and kills it after StopGrace.
func (p *Process) Stop() error {
	if !p.Running() {
		return nil
	}

	_ = p.stdin.Close()
	if err := p.cmd.Process.Signal(syscall.SIGTERM); err != nil && !errors.Is(err, os.ErrProcessDone) {
		p.logger.Warn("terminate player", "error", err)
	}

	select {
	case <-p.done:
		return nil
	case <-time.After(StopGrace):
	}

	p.logger.Warn("player ignored SIGTERM, killing")
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("kill player: %w", err)
	}
	<-p.done
	return nil
}

func (p *Process) Running() bool {
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

func (p *Process) Done() <-chan struct{} {
	return p.done
}

// exitErr returns the exit error once the player has exited.
func (p *Process) exitErr() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func scan(r io.Reader, onLine LineHandler) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	scanner.Split(scanLines)
	for scanner.Scan() {
		if onLine != nil && len(scanner.Bytes()) > 0 {
			onLine(scanner.Text())
		}
	}
	// drain so the writer never blocks
	_, _ = io.Copy(io.Discard, r)
}

// scanLines splits on \n and on the bare \r mplayer uses for status updates.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
