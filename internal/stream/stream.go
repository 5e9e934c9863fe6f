package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lucax88x/datestamp/internal/encoding"
)

const Separator = '\n'

type Reader struct {
	logger  *slog.Logger
	charset string
}

// NewReader returns a Reader for input written in charset, the empty name
// meaning UTF-8.
func NewReader(logger *slog.Logger, charset string) *Reader {
	return &Reader{
		logger,
		charset,
	}
}

// Listen sends every non blank line of r to ch, in order, and closes ch when
// it returns. It returns nil on EOF and ctx.Err() on cancellation.
func (s *Reader) Listen(
	ctx context.Context,
	r io.Reader,
	ch chan<- string,
) error {
	defer close(ch)

	reader := bufio.NewReader(r)
	internalCh := make(chan []byte)
	readerDone := make(chan error, 1)

	go func() {
		for {
			line, readErr := reader.ReadBytes(Separator)

			if len(line) > 0 {
				select {
				case internalCh <- line:
				case <-ctx.Done():
					readerDone <- ctx.Err()
					return
				}
			}

			if readErr != nil {
				if errors.Is(readErr, io.EOF) {
					s.logger.DebugContext(ctx, "stream: received EOF, stopping reader")
					readerDone <- nil
					return
				}

				s.logger.ErrorContext(ctx, "stream: read error", slog.Any("error", readErr))
				readerDone <- fmt.Errorf("stream: could not read: %w", readErr)
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger.DebugContext(ctx, "stream: context cancelled")
			return ctx.Err()

		case err := <-readerDone:
			return err

		case data := <-internalCh:
			line, err := encoding.Decode(data, s.charset)
			if err != nil {
				s.logger.WarnContext(ctx, "stream: could not decode line, skipping", slog.Any("error", err))
				continue
			}

			if line == "" {
				continue
			}

			select {
			case ch <- line:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
