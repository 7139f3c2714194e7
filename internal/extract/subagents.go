package extract

import (
	"io/fs"
	"strings"

	"github.com/dooosp/agent-showcase/pkg/catalog"
	"github.com/dooosp/agent-showcase/pkg/errors"
	"github.com/dooosp/agent-showcase/pkg/logging"
)

// frontMatterDelim opens and closes a subagent file's header block.
const frontMatterDelim = "---"

// ExtractSubagents walks a directory of subagent definition files
// (Source 2) and returns configurations keyed by the frontmatter name.
//
// Files are visited in fs.WalkDir order, which is lexical by path; when
// two files declare the same name the later one fully replaces the
// earlier (no field-level merge). Files without a leading frontmatter
// block, or whose block lacks a name, are skipped whole.
//
// The returned error only reflects a failure to enumerate or read the
// directory itself, which is fatal to the build.
func ExtractSubagents(fsys fs.FS) (map[string]catalog.SubagentConfig, error) {
	configs := make(map[string]catalog.SubagentConfig)

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.WrapIO("walk", path, err)
		}
		if d.IsDir() {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return errors.WrapIO("read", path, err)
		}

		config, ok := parseSubagent(string(data))
		if !ok {
			logging.Debug().Str("path", path).Msg("Skipped file without a named frontmatter block")
			return nil
		}
		configs[config.Name] = config
		return nil
	})
	if err != nil {
		return nil, err
	}

	return configs, nil
}

// parseSubagent extracts a SubagentConfig from one file's content.
// ok is false when the file has no frontmatter block or no name.
func parseSubagent(content string) (catalog.SubagentConfig, bool) {
	fields, ok := frontMatter(content)
	if !ok {
		return catalog.SubagentConfig{}, false
	}

	name := fields["name"]
	if name == "" {
		return catalog.SubagentConfig{}, false
	}

	model := fields["model"]
	if model == "" {
		model = catalog.DefaultModel
	}

	return catalog.SubagentConfig{
		Name:  name,
		Model: model,
		Tools: splitTools(fields["tools"]),
	}, true
}

// frontMatter returns the key/value lines of a leading ----delimited
// header block. ok is false when the block is absent or unterminated.
func frontMatter(content string) (map[string]string, bool) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontMatterDelim {
		return nil, false
	}

	fields := make(map[string]string)
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == frontMatterDelim {
			return fields, true
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	// No closing delimiter: not a frontmatter block.
	return nil, false
}

// splitTools parses the comma-separated tools field, trimming each
// entry and dropping empties. The result is never nil.
func splitTools(raw string) []string {
	tools := []string{}
	for _, tool := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tool); trimmed != "" {
			tools = append(tools, trimmed)
		}
	}
	return tools
}
