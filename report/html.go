package report

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/bgraf/phototrack/filesystem"
	"github.com/bgraf/phototrack/util/slices"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed assets
var assets embed.FS

// Document is a rendered report.
type Document struct {
	Title  string
	GUID   string
	Tracks []string
	HTML   string
}

// RenderHTML converts report markdown to an HTML page. Images become lazily
// loaded figures.
func RenderHTML(source []byte) (*Document, error) {
	gmark := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)

	var buffer bytes.Buffer
	pc := parser.NewContext()
	if err := gmark.Convert(source, &buffer, parser.WithContext(pc)); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	doc := &Document{}
	populateFromYAMLMetaData(doc, meta.Get(pc))

	page := "<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title></title>" +
		"<link rel=\"stylesheet\" href=\"style.css\"></head><body>" + buffer.String() + "</body></html>"

	htmlDoc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("could not parse HTML: %w", err)
	}

	htmlDoc.Find("title").SetText(doc.Title)

	htmlDoc.Find("img").Each(func(i int, s *goquery.Selection) {
		s.SetAttr("loading", "lazy")
		if alt, ok := s.Attr("alt"); ok {
			s.WrapHtml("<figure></figure>")
			s.AfterHtml(fmt.Sprintf("<figcaption>%s</figcaption>", alt))
		}
	})

	doc.HTML, err = htmlDoc.Html()
	if err != nil {
		return nil, fmt.Errorf("serialize HTML: %w", err)
	}

	return doc, nil
}

func populateFromYAMLMetaData(doc *Document, m map[string]interface{}) {
	if title, ok := m["title"].(string); ok {
		doc.Title = title
	}
	if guid, ok := m["guid"].(string); ok {
		doc.GUID = guid
	}
	if tracks, ok := m["tracks"].([]interface{}); ok {
		doc.Tracks, _ = slices.PartitionStrings(tracks)
	}
}

// Write stores the markdown source, the rendered page and its stylesheet in
// directory.
func Write(directory string, source []byte) (*Document, error) {
	doc, err := RenderHTML(source)
	if err != nil {
		return nil, err
	}

	if err := filesystem.CreateDirectoryIfNotExists(directory); err != nil {
		return nil, fmt.Errorf("could not ensure report directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(directory, "report.md"), source, 0o666); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(directory, "index.html"), []byte(doc.HTML), 0o666); err != nil {
		return nil, err
	}
	if err := filesystem.InstallFS(assets, "assets", directory); err != nil {
		return nil, err
	}

	return doc, nil
}
