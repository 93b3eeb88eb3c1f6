package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/vi-maze/constants"
)

var ErrInvalidDuration = errors.New("duration must be a positive whole number of seconds")

// ReadDuration prompts once for the autonomous run length in seconds
func ReadDuration(r io.Reader, w io.Writer) (time.Duration, error) {
	fmt.Fprint(w, constants.DurationPrompt)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, fmt.Errorf("read duration: %w", err)
	}

	line = strings.TrimSpace(line)
	secs, err := strconv.Atoi(line)
	if err != nil || secs <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, line)
	}
	return time.Duration(secs) * time.Second, nil
}
