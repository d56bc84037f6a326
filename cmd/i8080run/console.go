package main

import (
	"fmt"
	"io"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// termConsole puts stdin in raw mode and pipes translated keystrokes
// into an io.Reader the host.Machine console device can block-read
// from, mirroring the teacher's TerminalHost: raw mode plus a
// non-blocking read loop, with CR->LF and DEL->BS translation so the
// guest sees the same bytes a line-buffered terminal would send.
type termConsole struct {
	reader *io.PipeReader
	writer *io.PipeWriter

	fd           int
	oldTermState *term.State
	nonblockSet  bool

	stopCh  chan struct{}
	done    chan struct{}
	stopped sync.Once
}

func newTermConsole() (*termConsole, error) {
	pr, pw := io.Pipe()
	c := &termConsole{
		reader: pr,
		writer: pw,
		fd:     int(os.Stdin.Fd()),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}

	oldState, err := term.MakeRaw(c.fd)
	if err != nil {
		return nil, fmt.Errorf("console: set raw mode: %w", err)
	}
	c.oldTermState = oldState

	if err := syscall.SetNonblock(c.fd, true); err != nil {
		_ = term.Restore(c.fd, c.oldTermState)
		return nil, fmt.Errorf("console: set nonblocking stdin: %w", err)
	}
	c.nonblockSet = true

	go c.readLoop()
	return c, nil
}

func (c *termConsole) readLoop() {
	defer close(c.done)
	buf := make([]byte, 1)

	for {
		select {
		case <-c.stopCh:
			return
		default:
		}

		n, err := syscall.Read(c.fd, buf)
		if n > 0 {
			b := buf[0]
			if b == '\r' {
				b = '\n'
			}
			if b == 0x7F {
				b = 0x08
			}
			if _, werr := c.writer.Write([]byte{b}); werr != nil {
				return
			}
		}
		switch {
		case err == syscall.EAGAIN || err == syscall.EWOULDBLOCK:
			time.Sleep(5 * time.Millisecond)
		case err != nil:
			return
		case n == 0:
			time.Sleep(5 * time.Millisecond)
		}
	}
}

// Close stops the read loop and restores the terminal to its prior
// state. Safe to call once; further calls are no-ops.
func (c *termConsole) Close() {
	c.stopped.Do(func() {
		close(c.stopCh)
	})
	<-c.done
	_ = c.writer.Close()
	if c.nonblockSet {
		_ = syscall.SetNonblock(c.fd, false)
		c.nonblockSet = false
	}
	if c.oldTermState != nil {
		_ = term.Restore(c.fd, c.oldTermState)
		c.oldTermState = nil
	}
}
