package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/lexibox/internal/domain"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat accepts json, yaml or yml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown export format %q: %w", s, domain.ErrValidation)
	}
}

// FileName maps a legacy .json file name onto the format's extension.
func (f Format) FileName(base string) string {
	if f == FormatYAML {
		return strings.TrimSuffix(base, filepath.Ext(base)) + ".yaml"
	}
	return base
}

// WriteLegacy writes the three legacy files into dir and returns their
// paths. Each file is replaced atomically.
func WriteLegacy(dir string, data *LegacyData, format Format) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating export directory: %v: %w", err, domain.ErrPersistence)
	}

	vocab, err := EncodeVocab(data.Vocab, format)
	if err != nil {
		return nil, err
	}
	progress, err := encodeValue(data.Progress, format)
	if err != nil {
		return nil, err
	}
	stats, err := encodeValue(data.Stats, format)
	if err != nil {
		return nil, err
	}

	files := []struct {
		name string
		body []byte
	}{
		{format.FileName(VocabFile), vocab},
		{format.FileName(ProgressFile), progress},
		{format.FileName(StatsFile), stats},
	}
	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := writeFileAtomic(path, f.body, 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %v: %w", path, err, domain.ErrPersistence)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// EncodeVocab renders entries as one object keyed by word, in slice order.
func EncodeVocab(entries []NamedEntry, format Format) ([]byte, error) {
	if format == FormatYAML {
		return encodeVocabYAML(entries)
	}

	var buf bytes.Buffer
	buf.WriteString("{")
	for i, ne := range entries {
		if i > 0 {
			buf.WriteString(",")
		}
		key, err := json.Marshal(ne.Word)
		if err != nil {
			return nil, fmt.Errorf("encoding word %q: %w", ne.Word, err)
		}
		val, err := json.MarshalIndent(ne.Entry, "    ", "    ")
		if err != nil {
			return nil, fmt.Errorf("encoding entry %q: %w", ne.Word, err)
		}
		buf.WriteString("\n    ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(val)
	}
	if len(entries) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("}\n")
	return buf.Bytes(), nil
}

func encodeVocabYAML(entries []NamedEntry) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, ne := range entries {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ne.Word}
		val := &yaml.Node{}
		if err := val.Encode(ne.Entry); err != nil {
			return nil, fmt.Errorf("encoding entry %q: %w", ne.Word, err)
		}
		root.Content = append(root.Content, key, val)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encoding vocab yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding vocab yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeValue(v any, format Format) ([]byte, error) {
	if format == FormatYAML {
		out, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return out, nil
	}
	out, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("encoding json: %w", err)
	}
	return append(out, '\n'), nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(filename), ".lexibox-tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	return os.Rename(tmpFile.Name(), filename)
}
