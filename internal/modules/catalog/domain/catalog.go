package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const SchemaVersion = 1

var accentPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Topic ids double as export file names.
var topicIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

type TopicGroup struct {
	ID    string
	Label string
}

// HotspotRecord is the detail callout content for one hotspot id.
type HotspotRecord struct {
	ID     string
	Title  string
	Accent string
	Body   string
}

// Shape is one interactive region of a diagram, in character cells.
type Shape struct {
	Hotspot string
	Label   string
	X       int
	Y       int
	W       int
	H       int
}

// Diagram is a static drawing: background art lines plus hotspot shapes
// painted on top.
type Diagram struct {
	Width  int
	Height int
	Art    []string
	Shapes []Shape
}

type SubTab struct {
	ID      string
	Label   string
	Diagram Diagram
	Records map[string]HotspotRecord
}

type Photo struct {
	URL     string
	Caption string
}

type Topic struct {
	ID            string
	Label         string
	Subtitle      string
	Group         string
	DefaultSubTab string
	SubTabs       []SubTab
	Intro         string
	Photos        []Photo
	SearchQuery   string
	// Source names where the topic came from (embedded, dir, db, plugin:<name>).
	Source string
}

func (t Topic) SubTab(id string) (SubTab, bool) {
	for _, s := range t.SubTabs {
		if s.ID == id {
			return s, true
		}
	}
	return SubTab{}, false
}

func (t Topic) SubTabIDs() []string {
	out := make([]string, 0, len(t.SubTabs))
	for _, s := range t.SubTabs {
		out = append(out, s.ID)
	}
	return out
}

// Records is the lookup the viewer uses; unknown sub-tabs have no records.
func (t Topic) Records(subTab string) map[string]HotspotRecord {
	s, ok := t.SubTab(subTab)
	if !ok {
		return nil
	}
	return s.Records
}

func (t Topic) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return fmt.Errorf("topic id is required")
	}
	if !topicIDPattern.MatchString(t.ID) {
		return fmt.Errorf("topic %q: id may only contain a-z, 0-9, '_' and '-'", t.ID)
	}
	if strings.TrimSpace(t.Label) == "" {
		return fmt.Errorf("topic %s: label is required", t.ID)
	}
	if strings.TrimSpace(t.Group) == "" {
		return fmt.Errorf("topic %s: group is required", t.ID)
	}
	seen := map[string]struct{}{}
	for _, s := range t.SubTabs {
		if strings.TrimSpace(s.ID) == "" {
			return fmt.Errorf("topic %s: sub-tab id is required", t.ID)
		}
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("topic %s: duplicate sub-tab %s", t.ID, s.ID)
		}
		seen[s.ID] = struct{}{}
		for id, r := range s.Records {
			if r.ID != id {
				return fmt.Errorf("topic %s/%s: record key %s does not match id %s", t.ID, s.ID, id, r.ID)
			}
			if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.Body) == "" {
				return fmt.Errorf("topic %s/%s: record %s needs title and body", t.ID, s.ID, id)
			}
			if !accentPattern.MatchString(r.Accent) {
				return fmt.Errorf("topic %s/%s: record %s accent %q is not #rrggbb", t.ID, s.ID, id, r.Accent)
			}
		}
	}
	if t.DefaultSubTab != "" && len(t.SubTabs) > 0 {
		if _, ok := seen[t.DefaultSubTab]; !ok {
			return fmt.Errorf("topic %s: default sub-tab %s is not declared", t.ID, t.DefaultSubTab)
		}
	}
	return nil
}

// Pack is what a content source yields before it becomes a Catalog.
type Pack struct {
	Groups       []TopicGroup
	Topics       []Topic
	DefaultTopic string
}

// Catalog is the immutable, validated topic taxonomy.
type Catalog struct {
	groups       []TopicGroup
	topics       []Topic
	index        map[string]int
	defaultTopic string
}

func NewCatalog(pack Pack) (Catalog, error) {
	groupSet := map[string]struct{}{}
	for _, g := range pack.Groups {
		if strings.TrimSpace(g.ID) == "" {
			return Catalog{}, fmt.Errorf("group id is required")
		}
		if _, ok := groupSet[g.ID]; ok {
			return Catalog{}, fmt.Errorf("duplicate group %s", g.ID)
		}
		groupSet[g.ID] = struct{}{}
	}
	c := Catalog{
		groups: append([]TopicGroup(nil), pack.Groups...),
		index:  make(map[string]int, len(pack.Topics)),
	}
	for _, t := range pack.Topics {
		if err := t.Validate(); err != nil {
			return Catalog{}, err
		}
		if _, ok := groupSet[t.Group]; !ok {
			return Catalog{}, fmt.Errorf("topic %s: unknown group %s", t.ID, t.Group)
		}
		if _, ok := c.index[t.ID]; ok {
			return Catalog{}, fmt.Errorf("duplicate topic %s", t.ID)
		}
		c.index[t.ID] = len(c.topics)
		c.topics = append(c.topics, t)
	}
	c.defaultTopic = pack.DefaultTopic
	if _, ok := c.index[c.defaultTopic]; !ok && len(c.topics) > 0 {
		c.defaultTopic = c.Ordered()[0].ID
	}
	return c, nil
}

func (c Catalog) Groups() []TopicGroup { return append([]TopicGroup(nil), c.groups...) }
func (c Catalog) DefaultTopic() string { return c.defaultTopic }
func (c Catalog) Len() int             { return len(c.topics) }

func (c Catalog) Topic(id string) (Topic, bool) {
	i, ok := c.index[id]
	if !ok {
		return Topic{}, false
	}
	return c.topics[i], true
}

// Ordered returns topics grouped by group order, keeping declaration order
// inside each group.
func (c Catalog) Ordered() []Topic {
	out := make([]Topic, 0, len(c.topics))
	for _, g := range c.groups {
		out = append(out, c.InGroup(g.ID)...)
	}
	return out
}

func (c Catalog) InGroup(groupID string) []Topic {
	var out []Topic
	for _, t := range c.topics {
		if t.Group == groupID {
			out = append(out, t)
		}
	}
	return out
}

// Finding is an authoring problem that does not block loading.
type Finding struct {
	Topic   string
	SubTab  string
	Hotspot string
	Message string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s/%s: %s: %s", f.Topic, f.SubTab, f.Hotspot, f.Message)
}

// Lint reports shapes without records, records without shapes, shapes
// outside their diagram, and topics without sub-tabs.
func (c Catalog) Lint() []Finding {
	var out []Finding
	for _, t := range c.Ordered() {
		if len(t.SubTabs) == 0 {
			out = append(out, Finding{Topic: t.ID, Message: "topic has no sub-tabs"})
		}
		for _, s := range t.SubTabs {
			drawn := map[string]struct{}{}
			for _, sh := range s.Diagram.Shapes {
				drawn[sh.Hotspot] = struct{}{}
				if _, ok := s.Records[sh.Hotspot]; !ok {
					out = append(out, Finding{Topic: t.ID, SubTab: s.ID, Hotspot: sh.Hotspot, Message: "shape has no record"})
				}
				if sh.W <= 0 || sh.H <= 0 || sh.X < 0 || sh.Y < 0 ||
					(s.Diagram.Width > 0 && sh.X+sh.W > s.Diagram.Width) ||
					(s.Diagram.Height > 0 && sh.Y+sh.H > s.Diagram.Height) {
					out = append(out, Finding{Topic: t.ID, SubTab: s.ID, Hotspot: sh.Hotspot, Message: "shape lies outside the diagram"})
				}
			}
			recordIDs := make([]string, 0, len(s.Records))
			for id := range s.Records {
				recordIDs = append(recordIDs, id)
			}
			sort.Strings(recordIDs)
			for _, id := range recordIDs {
				if _, ok := drawn[id]; !ok {
					out = append(out, Finding{Topic: t.ID, SubTab: s.ID, Hotspot: id, Message: "record is not reachable from any shape"})
				}
			}
		}
	}
	return out
}

// Pack turns the catalog back into a source-independent pack for export.
func (c Catalog) Pack() Pack {
	return Pack{Groups: c.Groups(), Topics: c.Ordered(), DefaultTopic: c.defaultTopic}
}
