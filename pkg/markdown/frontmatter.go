package markdown

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

var delimiter = []byte("---")

// Metadata is the YAML frontmatter of a document.
type Metadata struct {
	Extra       map[string]any `yaml:",inline"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
}

// SplitFrontmatter separates leading "---" delimited YAML frontmatter from
// the markdown body. Content without frontmatter is returned as the body
// with empty metadata.
func SplitFrontmatter(content []byte) (Metadata, []byte, error) {
	var meta Metadata

	if !bytes.HasPrefix(content, delimiter) {
		return meta, content, nil
	}

	rest := bytes.TrimLeft(bytes.TrimPrefix(content, delimiter), "\r\n")
	if len(rest) == 0 {
		return meta, nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	end := bytes.Index(rest, delimiter)
	if end == -1 {
		return meta, nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	front := rest[:end]
	body := rest[end+len(delimiter):]
	// One line break after the closing delimiter belongs to it.
	body = bytes.TrimPrefix(body, []byte("\r"))
	body = bytes.TrimPrefix(body, []byte("\n"))

	if len(bytes.TrimSpace(front)) > 0 {
		if err := yaml.Unmarshal(front, &meta); err != nil {
			return meta, nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return meta, body, nil
}
