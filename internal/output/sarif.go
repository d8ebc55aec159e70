package output

import (
	"encoding/json"
	"io"

	"github.com/ToineBo/brackets/internal/types"
)

// ToolVersion is the version reported in SARIF output.
var ToolVersion = "dev"

// SARIFFormatter outputs the report in SARIF 2.1.0 format for GitHub Code
// Scanning. Each provider becomes one SARIF rule; its problems become results
// referencing that rule.
type SARIFFormatter struct{}

type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool       sarifTool      `json:"tool"`
	Results    []sarifResult  `json:"results"`
	Properties map[string]any `json:"properties,omitempty"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version"`
	InformationURI string      `json:"informationUri"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string       `json:"id"`
	Name             string       `json:"name"`
	ShortDescription sarifMessage `json:"shortDescription"`
}

type sarifMessage struct {
	Text string `json:"text"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	RuleIndex int             `json:"ruleIndex"`
	Level     string          `json:"level"`
	Message   sarifMessage    `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           sarifRegion           `json:"region"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   int `json:"startLine"`
	StartColumn int `json:"startColumn,omitempty"`
}

func (f *SARIFFormatter) Format(w io.Writer, report *types.Report) error {
	ruleIndex := map[string]int{}
	var rules []sarifRule
	var results []sarifResult

	for _, sec := range report.Sections {
		if _, ok := ruleIndex[sec.ProviderName]; !ok {
			ruleIndex[sec.ProviderName] = len(rules)
			rules = append(rules, sarifRule{
				ID:               sec.ProviderName,
				Name:             sec.ProviderName,
				ShortDescription: sarifMessage{Text: sec.ProviderName + " inspection"},
			})
		}
		for _, p := range sec.Problems {
			results = append(results, sarifResult{
				RuleID:    sec.ProviderName,
				RuleIndex: ruleIndex[sec.ProviderName],
				Level:     typeToLevel(p.Type),
				Message:   sarifMessage{Text: p.Message},
				Locations: []sarifLocation{
					{
						PhysicalLocation: sarifPhysicalLocation{
							ArtifactLocation: sarifArtifactLocation{URI: report.FilePath},
							// SARIF lines/columns are 1-based.
							Region: sarifRegion{StartLine: p.Pos.Line + 1, StartColumn: p.Pos.Ch + 1},
						},
					},
				},
			})
		}
	}

	log := sarifLog{
		Schema:  "https://docs.oasis-open.org/sarif/sarif/v2.1.0/sarif-schema-2.1.0.json",
		Version: "2.1.0",
		Runs: []sarifRun{
			{
				Tool: sarifTool{
					Driver: sarifDriver{
						Name:           "brackets-inspect",
						Version:        ToolVersion,
						InformationURI: "https://github.com/ToineBo/brackets",
						Rules:          rules,
					},
				},
				Results: results,
				Properties: map[string]any{
					"duration_ms": report.Duration.Milliseconds(),
					"aborted":     report.Aborted,
				},
			},
		},
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(log)
}

func typeToLevel(t types.ProblemType) string {
	switch t {
	case types.TypeError:
		return "error"
	case types.TypeWarning:
		return "warning"
	case types.TypeMeta:
		return "note"
	default:
		return "none"
	}
}
