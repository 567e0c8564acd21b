package dto

type ProbeOutput struct {
	URL    string
	Loaded bool
	// Reason is set when Loaded is false.
	Reason string
}

type SearchLinkOutput struct {
	Query string
	URL   string
}
