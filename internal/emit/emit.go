// Package emit serializes the merged site model to its two artifacts:
// a pure JSON data document and an embeddable JS module binding the
// same document to a constant, so the browser needs no runtime fetch.
package emit

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dooosp/agent-showcase/pkg/catalog"
	"github.com/dooosp/agent-showcase/pkg/errors"
)

// Output artifact names.
const (
	DataFileName   = "agents.json"
	ModuleFileName = "agents.js"
)

const (
	moduleHeader = "// Code generated by agent-showcase build. DO NOT EDIT.\n"
	modulePrefix = "export const AGENT_CATALOG = "
	moduleSuffix = ";\n"
)

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Write serializes data once and writes both artifacts under dir,
// creating it if needed. Both files are byte-for-byte derivable from
// the same marshaled document.
func Write(dir string, data *catalog.SiteData) error {
	doc, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return errors.WrapResource("serialize", "site data", "", err)
	}

	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	dataPath := filepath.Join(dir, DataFileName)
	if err := os.WriteFile(dataPath, append(doc, '\n'), filePermissions); err != nil {
		return errors.WrapIO("write", dataPath, err)
	}

	var module bytes.Buffer
	module.WriteString(moduleHeader)
	module.WriteString(modulePrefix)
	module.Write(doc)
	module.WriteString(moduleSuffix)

	modulePath := filepath.Join(dir, ModuleFileName)
	if err := os.WriteFile(modulePath, module.Bytes(), filePermissions); err != nil {
		return errors.WrapIO("write", modulePath, err)
	}

	return nil
}

// ReadBack parses an emitted agents.json back into a SiteData. It
// exists for the round-trip property: the parsed model must deep-equal
// the one that was written.
func ReadBack(path string) (*catalog.SiteData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	var data catalog.SiteData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.WrapParse("json", path, err)
	}
	return &data, nil
}

// ReadBackModule parses an emitted agents.js by stripping the generated
// header and binding, then decoding the embedded document.
func ReadBackModule(path string) (*catalog.SiteData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}

	content := string(raw)
	start := strings.Index(content, modulePrefix)
	if start < 0 {
		return nil, errors.NewParseError("js module", path, "missing export binding", nil)
	}
	content = strings.TrimPrefix(content[start:], modulePrefix)
	content = strings.TrimSuffix(strings.TrimSpace(content), ";")

	var data catalog.SiteData
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		return nil, errors.WrapParse("js module", path, err)
	}
	return &data, nil
}
