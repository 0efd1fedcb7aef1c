package types

// BasicsKey is the pseudo-section key used for identity fields in a
// ConfidenceReport. Identity fields are not a SectionKind.
const BasicsKey = "basics"

// ConfidenceReport describes how complete an extraction is. Confidence is a
// 0-100 completeness estimate, not a correctness guarantee: the parser has no
// ground truth to compare against.
type ConfidenceReport struct {
	Overall  int            `json:"overall"`
	Sections map[string]int `json:"sections"`
}
