package dto

import "github.com/rakib/uniportal/internal/app/models"

// ResultPageResponse is the student result view: term selector plus the
// selected term's result and graded items.
type ResultPageResponse struct {
	Terms          []string               `json:"terms"`
	SelectedTerm   string                 `json:"selectedTerm,omitempty"`
	SelectedResult *models.SemesterResult `json:"selectedResult,omitempty"`
	Items          []*models.ResultItem   `json:"items"`
}
