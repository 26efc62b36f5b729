package pressclip

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a stable hex digest of an extraction's composed
// text. The same input page yields the same fingerprint, which makes
// output determinism checkable and gives log lines a compact handle
// for the extracted content.
func Fingerprint(ex *Extraction) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(ComposeText(ex)))
}
