package clipboard

import (
	"fmt"

	"github.com/andareed/winman/logging"
	"github.com/atotto/clipboard"
)

// Copy puts text on the system clipboard. When no native clipboard is
// reachable (headless, ssh) it falls back to an OSC52 escape sequence.
func Copy(text string) error {
	if !clipboard.Unsupported {
		err := clipboard.WriteAll(text)
		if err == nil {
			logging.Infof("Clipboard: copied %d bytes natively", len(text))
			return nil
		}
		logging.Warnf("Clipboard: native copy failed, trying OSC52: %v", err)
	}
	if err := copyOSC52(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}
