package docs

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

const indexPath = "index.yaml"

// Topic is one browsable docs page.
type Topic struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Path  string `yaml:"path"`
}

type index struct {
	Topics []Topic `yaml:"topics"`
}

// Topics returns the docs topics in index order. Topics without an
// explicit title fall back to the document's first heading, then to
// the topic id.
func Topics() ([]Topic, error) {
	data, err := FS.ReadFile(indexPath)
	if err != nil {
		return nil, fmt.Errorf("read docs index: %w", err)
	}

	var idx index
	if err := yaml.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("parse docs index: %w", err)
	}

	for i, topic := range idx.Topics {
		if topic.Title != "" {
			continue
		}
		source, err := FS.ReadFile(topic.Path)
		if err != nil {
			return nil, fmt.Errorf("read docs topic %s: %w", topic.ID, err)
		}
		if title := firstHeading(source); title != "" {
			idx.Topics[i].Title = title
		} else {
			idx.Topics[i].Title = topic.ID
		}
	}
	return idx.Topics, nil
}

// Read returns the raw markdown for a topic path.
func Read(path string) ([]byte, error) {
	return FS.ReadFile(path)
}

// firstHeading extracts the text of the document's first level-1
// heading from the markdown AST.
func firstHeading(source []byte) string {
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok && heading.Level == 1 {
			title = string(heading.Text(source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}
