package models

// FAQ is a single question and answer pair served by the faqs endpoint
type FAQ struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}
