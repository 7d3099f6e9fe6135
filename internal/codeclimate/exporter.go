// Package codeclimate serializa issues normalizados no formato "code quality"
// que o GitLab consome em pipelines de CI.
//
// Referências:
//   - https://github.com/codeclimate/platform/blob/master/spec/analyzers/SPEC.md
//   - https://docs.gitlab.com/ee/ci/testing/code_quality.html#implement-a-custom-tool
package codeclimate

import (
	"encoding/json"
	"fmt"

	"github.com/ahogen/cppcheck-codequality/internal/model"
)

type Report []Issue

type Issue struct {
	Type           string     `json:"type"`
	CheckName      string     `json:"check_name"`
	Description    string     `json:"description"`
	Categories     []string   `json:"categories"`
	Severity       string     `json:"severity"` // info, minor, major, critical, blocker
	Fingerprint    string     `json:"fingerprint"`
	Location       Location   `json:"location"`
	OtherLocations []Location `json:"other_locations,omitempty"`
	Content        *Content   `json:"content,omitempty"`
}

type Content struct {
	Data string `json:"data"`
}

type Location struct {
	Path      string         `json:"path"`
	Lines     *LineRange     `json:"lines,omitempty"`
	Positions *PositionRange `json:"positions,omitempty"`
}

type LineRange struct {
	Begin int `json:"begin"`
}

type PositionRange struct {
	Begin Position `json:"begin"`
}

type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// FromIssues monta o documento na ordem recebida, sem reordenar: a saída
// segue a ordem do relatório de entrada.
func FromIssues(issues []model.Issue) Report {
	rep := make(Report, 0, len(issues))
	for _, iss := range issues {
		out := Issue{
			Type:        "issue",
			CheckName:   fmt.Sprintf("cppcheck[%s]", iss.RuleID),
			Description: iss.Description,
			Categories:  iss.Categories,
			Severity:    string(iss.Severity),
			Fingerprint: iss.Fingerprint,
			Location:    toLocation(iss.Location),
		}
		for _, loc := range iss.OtherLocations {
			out.OtherLocations = append(out.OtherLocations, toLocation(loc))
		}
		if iss.Content != "" {
			out.Content = &Content{Data: iss.Content}
		}
		rep = append(rep, out)
	}
	return rep
}

func toLocation(loc model.Location) Location {
	out := Location{
		Path:  loc.Path,
		Lines: &LineRange{Begin: loc.Line},
	}
	if loc.Column > 0 {
		out.Positions = &PositionRange{Begin: Position{Line: loc.Line, Column: loc.Column}}
	}
	return out
}

// Marshal produz o documento completo de uma vez. Relatório sem issues vira
// "[]", nunca "null".
func Marshal(issues []model.Issue) ([]byte, error) {
	data, err := json.MarshalIndent(FromIssues(issues), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal code quality: %w", err)
	}
	return data, nil
}
