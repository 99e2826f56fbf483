package harness

import (
	"os"

	"github.com/pkg/errors"
	"github.com/seiflotfy/bpevocab"
)

// dumpDictionary writes dict's debug rendering to path, truncating any
// previous contents. Used for the coordinator's periodic in-progress
// snapshots.
func dumpDictionary(path string, dict bpevocab.Dictionary) error {
	if err := os.WriteFile(path, []byte(dict.String()), 0o644); err != nil {
		return errors.Wrapf(err, "dump dictionary to %s", path)
	}
	return nil
}
