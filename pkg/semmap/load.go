package semmap

import (
	"os"

	"github.com/agentstation/semmap/pkg/errors"
)

// Load reads and parses the semantic map document at path. A missing file is
// reported as a NotFoundError, other read failures as IOError; parse failures
// carry the file name for context.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewNotFoundError("semantic map", path)
		}
		return nil, errors.WrapIO("read", path, err)
	}

	doc, err := Parse(string(data))
	if err != nil {
		var pe *errors.ParseError
		if errors.As(err, &pe) {
			pe.File = path
		}
		return nil, err
	}

	return doc, nil
}
