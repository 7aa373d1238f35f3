package main

import (
	"encoding/hex"
	"encoding/json"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gitlab.com/NebulousLabs/errors"
)

// bundleSchema describes the on-disk JSON proof bundle: a single
// inspectable file carrying everything mmrverify.Verify needs, with every
// byte string hex-encoded. It is a CLI convenience layered on top of the
// raw binary streams the library itself reads.
const bundleSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["mmr_size", "root", "commands", "leaves"],
  "properties": {
    "mmr_size": {"type": "integer", "minimum": 1},
    "root": {"type": "string", "pattern": "^[0-9a-fA-F]*$"},
    "personal": {"type": "string", "pattern": "^[0-9a-fA-F]*$"},
    "commands": {"type": "string", "pattern": "^[0-9a-fA-F]*$"},
    "leaves": {"type": "string", "pattern": "^[0-9a-fA-F]*$"}
  }
}`

// proofBundle is the decoded form of the JSON document above.
type proofBundle struct {
	MMRSize  uint64 `json:"mmr_size"`
	Root     string `json:"root"`
	Personal string `json:"personal"`
	Commands string `json:"commands"`
	Leaves   string `json:"leaves"`
}

func compileBundleSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("bundle.json", strings.NewReader(bundleSchema)); err != nil {
		return nil, errors.AddContext(err, "compiling proof bundle schema")
	}
	return compiler.Compile("bundle.json")
}

// loadBundle reads and validates a proof bundle file, returning its decoded
// fields. Validation happens against the raw JSON document before it is
// unmarshalled into proofBundle, so a malformed bundle is rejected with a
// schema-level error rather than a field-by-field json.Unmarshal failure.
func loadBundle(path string) (proofBundle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return proofBundle{}, errors.AddContext(err, "reading proof bundle "+path)
	}

	schema, err := compileBundleSchema()
	if err != nil {
		return proofBundle{}, err
	}

	var doc interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return proofBundle{}, errors.AddContext(err, "parsing proof bundle "+path)
	}
	if err := schema.Validate(doc); err != nil {
		return proofBundle{}, errors.AddContext(err, "validating proof bundle "+path)
	}

	var b proofBundle
	if err := json.Unmarshal(raw, &b); err != nil {
		return proofBundle{}, errors.AddContext(err, "decoding proof bundle "+path)
	}
	return b, nil
}

func (b proofBundle) decodeHex() (root, personal, commands, leaves []byte, err error) {
	if root, err = hex.DecodeString(b.Root); err != nil {
		return nil, nil, nil, nil, errors.AddContext(err, "decoding root")
	}
	if b.Personal != "" {
		if personal, err = hex.DecodeString(b.Personal); err != nil {
			return nil, nil, nil, nil, errors.AddContext(err, "decoding personal")
		}
	}
	if commands, err = hex.DecodeString(b.Commands); err != nil {
		return nil, nil, nil, nil, errors.AddContext(err, "decoding commands")
	}
	if leaves, err = hex.DecodeString(b.Leaves); err != nil {
		return nil, nil, nil, nil, errors.AddContext(err, "decoding leaves")
	}
	return root, personal, commands, leaves, nil
}

func writeBundle(path string, b proofBundle) error {
	raw, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return errors.AddContext(err, "encoding proof bundle")
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return errors.AddContext(err, "writing proof bundle "+path)
	}
	return nil
}
