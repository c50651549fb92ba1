package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// LineOptions configures RunLines
type LineOptions struct {
	// ClearScreen clears the terminal before each screen is written
	ClearScreen bool
}

// RunLines drives sh from r, one line per Submit, writing every screen to w.
// End of input stops the session without saving.
func RunLines(sh *Shell, r io.Reader, w io.Writer, opts LineOptions) error {
	out := termenv.NewOutput(w)
	show := func(text string) error {
		if text == "" {
			return nil
		}
		if opts.ClearScreen && !sh.Rejected() {
			out.ClearScreen()
		}
		_, err := fmt.Fprint(w, text)
		return err
	}

	if err := show(sh.Start()); err != nil {
		return err
	}

	reader := bufio.NewReader(r)
	for !sh.Done() {
		line, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) && line == "" {
			sh.logger.Info("End of input")
			return sh.Err()
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if err := show(sh.Submit(line)); err != nil {
			return err
		}
	}
	return sh.Err()
}
