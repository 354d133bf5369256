// Package fs exports the corpus as Markdown files.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/lawchat"
	"gopkg.in/yaml.v3"
)

// Exporter writes one Markdown file per article with YAML frontmatter.
// Files are written to baseDir/name.tmp and moved to baseDir/name only
// once every article has been written.
type Exporter struct {
	baseDir string
	name    string

	// Now returns the export time. Defaults to time.Now.
	Now func() time.Time
}

// NewExporter creates a new Exporter.
func NewExporter(baseDir, name string) *Exporter {
	return &Exporter{baseDir: baseDir, name: name, Now: time.Now}
}

func (e *Exporter) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

func (e *Exporter) finalDir() string {
	return filepath.Join(e.baseDir, e.name)
}

// Export writes tree and returns the number of files written. On failure
// the partial output is removed and any previous export is left in place.
func (e *Exporter) Export(ctx context.Context, tree *lawchat.DocumentTree) (n int, err error) {
	if tree == nil {
		return 0, lawchat.Errorf(lawchat.EINVALID, "document tree required")
	}
	if err := os.RemoveAll(e.tempDir()); err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = e.abort()
		}
	}()

	exported := e.Now()
	for pi, p := range tree.Parts {
		for _, c := range p.Chapters {
			for _, a := range c.Articles {
				if err := ctx.Err(); err != nil {
					return n, err
				}
				a.Part, a.Chapter = p.Title, c.Title

				content, err := FormatArticle(a, exported)
				if err != nil {
					return n, err
				}
				path := filepath.Join(e.tempDir(), ArticlePath(pi, a))
				if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
					return n, err
				}
				if err := os.WriteFile(path, []byte(content), 0644); err != nil {
					return n, err
				}
				n++
			}
		}
	}

	return n, e.commit()
}

func (e *Exporter) commit() error {
	if _, err := os.Stat(e.tempDir()); os.IsNotExist(err) {
		if err := os.MkdirAll(e.tempDir(), 0755); err != nil {
			return err
		}
	}
	if err := os.RemoveAll(e.finalDir()); err != nil {
		return err
	}
	return os.Rename(e.tempDir(), e.finalDir())
}

func (e *Exporter) abort() error {
	return os.RemoveAll(e.tempDir())
}

// ArticlePath returns the file path of a within the export directory.
// Parts are numbered by position so directory order follows the tree.
// Example: part 3, article 17 -> part-03/article-017.md
func ArticlePath(partIndex int, a lawchat.Article) string {
	return filepath.Join(fmt.Sprintf("part-%02d", partIndex+1), fmt.Sprintf("article-%03d.md", a.Number))
}

type frontmatter struct {
	Article  int    `yaml:"article"`
	Title    string `yaml:"title"`
	Part     string `yaml:"part"`
	Chapter  string `yaml:"chapter,omitempty"`
	Exported string `yaml:"exported"`
}

// FormatArticle formats an article with YAML frontmatter.
func FormatArticle(a lawchat.Article, exported time.Time) (string, error) {
	meta, err := yaml.Marshal(frontmatter{
		Article:  a.Number,
		Title:    a.Title,
		Part:     a.Part,
		Chapter:  a.Chapter,
		Exported: exported.Format("2006-01-02"),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "# Article %d: %s\n\n", a.Number, a.Title)
	b.WriteString(a.Body)
	b.WriteString("\n")
	return b.String(), nil
}
