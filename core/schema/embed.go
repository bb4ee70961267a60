package schema

import (
	"bytes"
	_ "embed"
)

// The vendor master schema ships with the binary so the service can run
// without any external schema file. An explicit path or storage object in
// the configuration overrides it.
//
//go:embed master.json
var embeddedDoc []byte

// LoadDefault loads the schema document bundled with the binary.
func LoadDefault() (*Master, error) {
	return Load(bytes.NewReader(embeddedDoc))
}
