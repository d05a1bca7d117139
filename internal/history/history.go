package history

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"

	"git.lost.host/meutraa/susc/internal/sus"
)

// Store keeps a record of completed conversions so unchanged charts can
// be skipped on later runs.
type Store interface {
	Init(path string) error
	Deinit()

	// Seen reports whether a conversion with this sum was recorded
	Seen(sum string) (bool, error)

	// Record saves a completed conversion
	Record(sum, output string) error
}

// Sum identifies a conversion, the chart bytes plus every option and
// metadata override that changes the output.
func Sum(data []byte, opts sus.Options, overrides ...string) string {
	h := sha256.New()
	h.Write(data)
	fmt.Fprintf(h, "|%v|%v|%v", opts.Comment, opts.Space, opts.StrictCollisions)
	for _, override := range overrides {
		fmt.Fprintf(h, "|%v", override)
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
