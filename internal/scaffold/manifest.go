package scaffold

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/buger/jsonparser"

	"github.com/dimi-r1/create-fb-react/internal/system"
)

// SetManifestName returns data with its top-level "name" field set to name.
// An existing field is edited in place so every other field keeps its value,
// order, and formatting. A missing field is inserted as the first member,
// indented like the member that follows it. Duplicate "name" members are
// rejected because npm would read the last one.
func SetManifestName(data []byte, name string) ([]byte, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("manifest is not valid JSON")
	}
	if trimmed := bytes.TrimSpace(data); len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, fmt.Errorf("manifest must be a JSON object")
	}

	quoted, err := json.Marshal(name)
	if err != nil {
		return nil, err
	}

	count, err := countNameMembers(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest fields: %w", err)
	}

	switch count {
	case 0:
		return insertName(data, quoted), nil
	case 1:
		out, err := jsonparser.Set(data, quoted, "name")
		if err != nil {
			return nil, fmt.Errorf("failed to set name: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("manifest has %d name fields", count)
	}
}

func countNameMembers(data []byte) (int, error) {
	count := 0
	err := jsonparser.ObjectEach(data, func(key, _ []byte, _ jsonparser.ValueType, _ int) error {
		// ObjectEach hands over keys already unescaped.
		if string(key) == "name" {
			count++
		}
		return nil
	})
	return count, err
}

// insertName adds "name" right after the opening brace. data must be a
// valid JSON object.
func insertName(data, quoted []byte) []byte {
	open := bytes.IndexByte(data, '{')
	rest := data[open+1:]
	indent := rest[:len(rest)-len(bytes.TrimLeft(rest, " \t\r\n"))]

	var buf bytes.Buffer
	buf.Write(data[:open+1])
	buf.Write(indent)
	buf.WriteString(`"name": `)
	buf.Write(quoted)
	if rest[len(indent)] != '}' {
		buf.WriteByte(',')
		if len(indent) == 0 {
			buf.WriteByte(' ')
		}
	}
	buf.Write(rest)
	return buf.Bytes()
}

// RewriteManifest reads the manifest at path, sets its name, and writes it back
// with the original permissions.
func RewriteManifest(fsys system.FileSystem, path, name string) error {
	base := filepath.Base(path)

	data, err := fsys.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", base, err)
	}

	updated, err := SetManifestName(data, name)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", base, err)
	}

	perm := manifestMode(fsys, path)
	if err := fsys.WriteFile(path, updated, perm); err != nil {
		return fmt.Errorf("failed to write %s: %w", base, err)
	}
	return nil
}

func manifestMode(fsys system.FileSystem, path string) fs.FileMode {
	info, err := fsys.Stat(path)
	if err != nil || info.Mode().Perm() == 0 {
		return 0644
	}
	return info.Mode().Perm()
}
