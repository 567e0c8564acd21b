package out

import (
	"fmt"
	"strings"

	"hazepito/internal/modules/catalog/domain"
	"hazepito/internal/platform/markdown"
	"hazepito/internal/platform/slug"
)

// ─── topic document ───
//
// A topic file is markdown: the YAML frontmatter carries the structure and
// the body is the intro shown above the diagram.

type topicDocument struct {
	ID            string           `yaml:"id"`
	Label         string           `yaml:"label"`
	Subtitle      string           `yaml:"subtitle,omitempty"`
	Group         string           `yaml:"group"`
	DefaultSubTab string           `yaml:"default_subtab,omitempty"`
	SearchQuery   string           `yaml:"search_query,omitempty"`
	Photos        []photoDocument  `yaml:"photos,omitempty"`
	SubTabs       []subTabDocument `yaml:"subtabs"`
}

type photoDocument struct {
	URL     string `yaml:"url"`
	Caption string `yaml:"caption,omitempty"`
}

type subTabDocument struct {
	ID      string                    `yaml:"id"`
	Label   string                    `yaml:"label"`
	Diagram diagramDocument           `yaml:"diagram"`
	Records map[string]recordDocument `yaml:"records"`
}

type diagramDocument struct {
	Width  int             `yaml:"width"`
	Height int             `yaml:"height"`
	Art    string          `yaml:"art,omitempty"`
	Shapes []shapeDocument `yaml:"shapes"`
}

type shapeDocument struct {
	Hotspot string `yaml:"hotspot"`
	Label   string `yaml:"label,omitempty"`
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
	W       int    `yaml:"w"`
	H       int    `yaml:"h"`
}

type recordDocument struct {
	Title  string `yaml:"title"`
	Accent string `yaml:"accent"`
	Body   string `yaml:"body"`
}

// DecodeTopicDocument parses one topic file. fileName is used as the id
// when the frontmatter omits it.
func DecodeTopicDocument(fileName, content string) (domain.Topic, error) {
	doc := topicDocument{}
	body, err := markdown.DecodeFrontmatter(content, &doc)
	if err != nil {
		return domain.Topic{}, fmt.Errorf("%s: %w", fileName, err)
	}
	id := strings.TrimSpace(doc.ID)
	if id == "" {
		id = slug.Make(strings.TrimSuffix(fileName, ".md"))
	}
	topic := domain.Topic{
		ID:            id,
		Label:         strings.TrimSpace(doc.Label),
		Subtitle:      strings.TrimSpace(doc.Subtitle),
		Group:         strings.TrimSpace(doc.Group),
		DefaultSubTab: strings.TrimSpace(doc.DefaultSubTab),
		SearchQuery:   strings.TrimSpace(doc.SearchQuery),
		Intro:         strings.TrimSpace(body),
	}
	for _, p := range doc.Photos {
		if strings.TrimSpace(p.URL) == "" {
			continue
		}
		topic.Photos = append(topic.Photos, domain.Photo{URL: strings.TrimSpace(p.URL), Caption: p.Caption})
	}
	for _, s := range doc.SubTabs {
		sub := domain.SubTab{
			ID:    strings.TrimSpace(s.ID),
			Label: strings.TrimSpace(s.Label),
			Diagram: domain.Diagram{
				Width:  s.Diagram.Width,
				Height: s.Diagram.Height,
				Art:    splitArt(s.Diagram.Art),
			},
			Records: make(map[string]domain.HotspotRecord, len(s.Records)),
		}
		for _, sh := range s.Diagram.Shapes {
			sub.Diagram.Shapes = append(sub.Diagram.Shapes, domain.Shape(sh))
		}
		for key, r := range s.Records {
			sub.Records[key] = domain.HotspotRecord{
				ID:     key,
				Title:  strings.TrimSpace(r.Title),
				Accent: strings.TrimSpace(r.Accent),
				Body:   strings.TrimSpace(r.Body),
			}
		}
		topic.SubTabs = append(topic.SubTabs, sub)
	}
	if topic.DefaultSubTab == "" && len(topic.SubTabs) > 0 {
		topic.DefaultSubTab = topic.SubTabs[0].ID
	}
	if err := topic.Validate(); err != nil {
		return domain.Topic{}, fmt.Errorf("%s: %w", fileName, err)
	}
	return topic, nil
}

func EncodeTopicDocument(topic domain.Topic) (string, error) {
	doc := topicDocument{
		ID:            topic.ID,
		Label:         topic.Label,
		Subtitle:      topic.Subtitle,
		Group:         topic.Group,
		DefaultSubTab: topic.DefaultSubTab,
		SearchQuery:   topic.SearchQuery,
	}
	for _, p := range topic.Photos {
		doc.Photos = append(doc.Photos, photoDocument(p))
	}
	for _, s := range topic.SubTabs {
		sub := subTabDocument{
			ID:    s.ID,
			Label: s.Label,
			Diagram: diagramDocument{
				Width:  s.Diagram.Width,
				Height: s.Diagram.Height,
				Art:    strings.Join(s.Diagram.Art, "\n"),
			},
			Records: make(map[string]recordDocument, len(s.Records)),
		}
		for _, sh := range s.Diagram.Shapes {
			sub.Diagram.Shapes = append(sub.Diagram.Shapes, shapeDocument(sh))
		}
		for id, r := range s.Records {
			sub.Records[id] = recordDocument{Title: r.Title, Accent: r.Accent, Body: r.Body}
		}
		doc.SubTabs = append(doc.SubTabs, sub)
	}
	body := topic.Intro
	if body != "" && !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	return markdown.RenderFrontmatter(doc, body)
}

func splitArt(art string) []string {
	art = strings.TrimRight(art, "\n")
	if art == "" {
		return nil
	}
	return strings.Split(art, "\n")
}
