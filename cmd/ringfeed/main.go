// ringfeed pushes stdin lines to a ringqueue server, optionally holding back the last lines
// until enough newer lines confirm them.
package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/hedisam/pipeline/chans"
	"github.com/hedisam/ringqueue/internal/client"
	"github.com/hedisam/ringqueue/internal/window"
)

// maxLineBytes bounds a single input line. Reading stops at the first longer line.
const maxLineBytes = 1 << 20

type Options struct {
	ServerAddr string
	Hold       uint
	Squash     bool
	Verbose    bool
}

func main() {
	var opts Options
	flag.StringVar(&opts.ServerAddr, "server", "http://localhost:8080", "Base address of the ringqueue server")
	flag.UintVar(&opts.Hold, "hold", 0, "Number of trailing lines held back and never pushed. 0 pushes every line")
	flag.BoolVar(&opts.Squash, "squash", false, "Collapse repeated lines while they are held back, keeping the newest. Needs -hold")
	flag.BoolVar(&opts.Verbose, "v", false, "Verbose output")
	flag.Parse()

	logger := logrus.New()
	if opts.ServerAddr == "" {
		logger.Error("--server is required")
		flag.Usage()
		os.Exit(1)
	}
	if opts.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := client.New(logger, &http.Client{Timeout: time.Second * 10}, opts.ServerAddr)
	c.Feed(ctx, feedLines(ctx, logger, os.Stdin, opts))

	stats, err := c.Stats(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to get queue stats")
		os.Exit(1)
	}
	logger.WithFields(logrus.Fields{
		"size":     humanize.Comma(int64(stats.Size)),
		"capacity": humanize.Comma(int64(stats.Capacity)),
	}).Info("Done feeding")
}

// feedLines returns the lines of r that should be pushed, in order.
func feedLines(ctx context.Context, logger *logrus.Logger, r io.Reader, opts Options) <-chan string {
	lines := readLines(ctx, logger, r)
	if opts.Hold == 0 {
		return lines
	}

	var linked window.LinkFunc[string]
	if opts.Squash {
		linked = distinctLines
	}
	return window.Confirm(ctx, logger, lines, opts.Hold, linked)
}

// distinctLines makes a repeated line replace its held copy.
func distinctLines(prev, next string) bool {
	return prev != next
}

func readLines(ctx context.Context, logger *logrus.Logger, r io.Reader) <-chan string {
	out := make(chan string)

	go func() {
		defer close(out)

		var read int64
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if !chans.SendOrDone(ctx, out, line) {
				return
			}
			read++
		}
		if err := scanner.Err(); err != nil {
			logger.WithError(err).Error("Failed to read input")
		}
		logger.WithField("lines", humanize.Comma(read)).Debug("Input exhausted")
	}()

	return out
}
