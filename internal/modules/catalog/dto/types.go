package dto

type TopicSummaryOutput struct {
	ID       string
	Label    string
	Subtitle string
	Group    string
	Source   string
}

type GroupOutput struct {
	ID     string
	Label  string
	Topics []TopicSummaryOutput
}

type TaxonomyOutput struct {
	Groups       []GroupOutput
	DefaultTopic string
}

type ShapeOutput struct {
	Hotspot string
	Label   string
	X       int
	Y       int
	W       int
	H       int
}

type DiagramOutput struct {
	Width  int
	Height int
	Art    []string
	Shapes []ShapeOutput
}

type RecordOutput struct {
	ID     string
	Title  string
	Accent string
	Body   string
}

type SubTabOutput struct {
	ID      string
	Label   string
	Diagram DiagramOutput
	Records map[string]RecordOutput
}

type PhotoOutput struct {
	URL     string
	Caption string
}

type TopicOutput struct {
	ID            string
	Label         string
	Subtitle      string
	Group         string
	DefaultSubTab string
	Intro         string
	SearchQuery   string
	Source        string
	SubTabs       []SubTabOutput
	Photos        []PhotoOutput
}

type FindingOutput struct {
	Topic   string
	SubTab  string
	Hotspot string
	Message string
}

type ExportInput struct {
	// Format is "sqlite" or "markdown".
	Format string
	Path   string
}

type ExportOutput struct {
	Format string
	Path   string
	Topics int
}
