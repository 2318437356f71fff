package semmap

import (
	"os"

	"github.com/agentstation/semmap/pkg/constants"
	"github.com/agentstation/semmap/pkg/errors"
)

// Save writes the document's canonical markdown form to path, replacing any
// existing file in one whole-file write.
func (d *Document) Save(path string) error {
	if err := os.WriteFile(path, []byte(d.Markdown()), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
