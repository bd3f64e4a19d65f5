package output

import "gopkg.in/yaml.v3"

// YAMLFormatter formats reports as YAML.
type YAMLFormatter struct{}

type yamlOutput struct {
	GeneratedAt string       `yaml:"generated_at"`
	TotalFiles  int          `yaml:"total_files"`
	Summary     yamlSummary  `yaml:"summary"`
	Results     []yamlResult   `yaml:"results"`
	Ignored     []yamlIgnored  `yaml:"ignored,omitempty"`
	Stats       map[string]any `yaml:"stats,omitempty"`
}

type yamlIgnored struct {
	Payload string `yaml:"payload"`
	File    string `yaml:"file"`
	Line    int    `yaml:"line"`
	Reason  string `yaml:"reason"`
	Rule    string `yaml:"rule"`
}

type yamlSummary struct {
	Total          int `yaml:"total"`
	Resolved       int `yaml:"resolved"`
	Invalid        int `yaml:"invalid"`
	UniquePayloads int `yaml:"unique_payloads"`
	FilesWithEmbed int `yaml:"files_with_markers"`
}

type yamlResult struct {
	Payload  string `yaml:"payload"`
	FilePath string `yaml:"file_path"`
	Status   string `yaml:"status"`
	FileID   string `yaml:"file_id,omitempty"`
	NodeID   string `yaml:"node_id,omitempty"`
	URL      string `yaml:"url,omitempty"`
	Line     int    `yaml:"line"`
	Column   int    `yaml:"column"`
}

// Format implements Formatter.
func (*YAMLFormatter) Format(report *Report) ([]byte, error) {
	out := yamlOutput{
		GeneratedAt: report.GeneratedAt.Format(timestampLayout),
		TotalFiles:  len(report.Files),
		Summary: yamlSummary{
			Total:          report.Summary.Total,
			Resolved:       report.Summary.Resolved,
			Invalid:        report.Summary.Invalid,
			UniquePayloads: report.Summary.UniquePayloads,
			FilesWithEmbed: report.Summary.Files,
		},
		Results: make([]yamlResult, 0, len(report.Results)),
		Stats:   report.Stats,
	}

	for _, r := range report.Results {
		out.Results = append(out.Results, yamlResult{
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
		out.Ignored = append(out.Ignored, yamlIgnored(ig))
	}

	return yaml.Marshal(out)
}
