package output

import "encoding/json"

// JSONFormatter formats reports as JSON.
type JSONFormatter struct{}

type jsonOutput struct {
	GeneratedAt string       `json:"generated_at"`
	TotalFiles  int          `json:"total_files"`
	Summary     jsonSummary  `json:"summary"`
	Results     []jsonResult   `json:"results"`
	Ignored     []jsonIgnored  `json:"ignored,omitempty"`
	Stats       map[string]any `json:"stats,omitempty"`
}

type jsonIgnored struct {
	Payload string `json:"payload"`
	File    string `json:"file"`
	Line    int    `json:"line"`
	Reason  string `json:"reason"`
	Rule    string `json:"rule"`
}

type jsonSummary struct {
	Total          int `json:"total"`
	Resolved       int `json:"resolved"`
	Invalid        int `json:"invalid"`
	UniquePayloads int `json:"unique_payloads"`
	FilesWithEmbed int `json:"files_with_markers"`
}

type jsonResult struct {
	Payload  string `json:"payload"`
	FilePath string `json:"file_path"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Status   string `json:"status"`
	FileID   string `json:"file_id,omitempty"`
	NodeID   string `json:"node_id,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Format implements Formatter.
func (*JSONFormatter) Format(report *Report) ([]byte, error) {
	out := jsonOutput{
		GeneratedAt: report.GeneratedAt.Format(timestampLayout),
		TotalFiles:  len(report.Files),
		Summary: jsonSummary{
			Total:          report.Summary.Total,
			Resolved:       report.Summary.Resolved,
			Invalid:        report.Summary.Invalid,
			UniquePayloads: report.Summary.UniquePayloads,
			FilesWithEmbed: report.Summary.Files,
		},
		Results: make([]jsonResult, 0, len(report.Results)),
		Stats:   report.Stats,
	}

	for _, r := range report.Results {
		out.Results = append(out.Results, jsonResult{
			Payload:  r.Marker.Payload,
			FilePath: r.Marker.FilePath,
			Line:     r.Marker.Line,
			Column:   r.Marker.Column,
			Status:   r.Status.String(),
			FileID:   r.Ref.ID,
			NodeID:   r.Ref.NodeID,
			URL:      r.URL,
		})
	}

	for _, ig := range report.Ignored {
		out.Ignored = append(out.Ignored, jsonIgnored(ig))
	}

	return json.MarshalIndent(out, "", "  ")
}
