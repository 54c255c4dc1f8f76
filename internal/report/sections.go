// Package report presents stored verdicts: it reads the strict-format section
// tags for display and renders results as DOCX downloads. It never changes
// the stored text.
package report

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Section is one <section id="..."> block of a strict-format verdict.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Text  string `json:"text"`
	HTML  string `json:"html"`
}

var sectionTitles = map[string]string{
	"nota-final":    "Nota final",
	"pontuacao":     "Pontuação por critério",
	"pontos-fortes": "Pontos fortes",
	"sugestoes":     "Sugestões de melhoria",
}

// ParseSections returns the section blocks found in text, in document order.
// Free-form verdicts and malformed output yield nil.
func ParseSections(text string) []Section {
	if !strings.Contains(text, "<section") {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err != nil {
		return nil
	}

	var sections []Section
	doc.Find("section[id]").Each(func(_ int, s *goquery.Selection) {
		id, _ := s.Attr("id")
		inner, _ := s.Html()
		sections = append(sections, Section{
			ID:    id,
			Title: titleFor(id),
			Text:  blockText(s),
			HTML:  strings.TrimSpace(inner),
		})
	})
	return sections
}

func titleFor(id string) string {
	if t, ok := sectionTitles[id]; ok {
		return t
	}
	return id
}

// blockText keeps one line per paragraph or list item.
func blockText(s *goquery.Selection) string {
	blocks := s.Find("p, li")
	if blocks.Length() == 0 {
		return strings.TrimSpace(s.Text())
	}
	var lines []string
	blocks.Each(func(_ int, b *goquery.Selection) {
		if line := strings.TrimSpace(b.Text()); line != "" {
			if goquery.NodeName(b) == "li" {
				line = "- " + line
			}
			lines = append(lines, line)
		}
	})
	return strings.Join(lines, "\n")
}
