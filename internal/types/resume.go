// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// SectionKind identifies a canonical résumé section. All recognized heading
// variants normalize to one of these values.
type SectionKind string

const (
	SectionWork         SectionKind = "work"
	SectionEducation    SectionKind = "education"
	SectionSkills       SectionKind = "skills"
	SectionProjects     SectionKind = "projects"
	SectionCertificates SectionKind = "certificates"
	SectionLanguages    SectionKind = "languages"
)

// AllSectionKinds lists every canonical section kind in a stable order.
var AllSectionKinds = []SectionKind{
	SectionWork,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertificates,
	SectionLanguages,
}

// RawSection is a detected résumé section: the canonical name plus the
// verbatim text between its heading and the next detected heading.
type RawSection struct {
	Name    SectionKind `json:"name"`
	Content string      `json:"content"`
}

// ContactInfo holds contact fields extracted from the whole document.
// Every field is optional; an unmatched field stays empty and is omitted
// from JSON rather than echoed as an empty string.
type ContactInfo struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Location is a best-effort split of a "City, X" fragment.
type Location struct {
	City    string `json:"city,omitempty"`
	Region  string `json:"region,omitempty"`
	Country string `json:"country,omitempty"`
}

// ParsedBasics holds the identity fields extracted from the leading portion
// of the document rather than from a detected section.
type ParsedBasics struct {
	Name     string   `json:"name,omitempty"`
	Title    string   `json:"title,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	Location Location `json:"location"`
	ContactInfo
}

// WorkEntry represents a single position within a work section.
type WorkEntry struct {
	Position   string   `json:"position,omitempty"`
	Company    string   `json:"company,omitempty"`
	StartDate  string   `json:"start_date,omitempty"`
	EndDate    string   `json:"end_date,omitempty"` // date text or "Present"
	Highlights []string `json:"highlights"`
}

// EducationEntry represents a single degree or program.
type EducationEntry struct {
	StudyType   string `json:"study_type,omitempty"`
	Area        string `json:"area,omitempty"`
	Institution string `json:"institution,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Score       string `json:"score,omitempty"` // GPA or equivalent
}

// SkillEntry represents one skill or skill group. Name is the category label
// (or the skill name itself when ungrouped); Keywords holds sub-items.
type SkillEntry struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// ProjectEntry represents a single project.
type ProjectEntry struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Highlights  []string `json:"highlights"`
	URL         string   `json:"url,omitempty"`
}

// CertificateEntry represents a single certification.
type CertificateEntry struct {
	Name   string `json:"name,omitempty"`
	Issuer string `json:"issuer,omitempty"`
}

// LanguageEntry represents a spoken language with an optional fluency level
// drawn from a closed vocabulary.
type LanguageEntry struct {
	Language string `json:"language,omitempty"`
	Fluency  string `json:"fluency,omitempty"`
}

// ParsedResumeData is the assembled candidate-profile record produced by one
// parse invocation. Array fields are always non-nil.
type ParsedResumeData struct {
	Basics       ParsedBasics       `json:"basics"`
	Work         []WorkEntry        `json:"work"`
	Education    []EducationEntry   `json:"education"`
	Skills       []SkillEntry       `json:"skills"`
	Projects     []ProjectEntry     `json:"projects"`
	Certificates []CertificateEntry `json:"certificates"`
	Languages    []LanguageEntry    `json:"languages"`
}

// NewParsedResumeData returns an empty record with every array initialized,
// so callers never observe a nil slice.
func NewParsedResumeData() *ParsedResumeData {
	return &ParsedResumeData{
		Work:         []WorkEntry{},
		Education:    []EducationEntry{},
		Skills:       []SkillEntry{},
		Projects:     []ProjectEntry{},
		Certificates: []CertificateEntry{},
		Languages:    []LanguageEntry{},
	}
}

// Clone returns a deep copy of the record. Parse results are value objects;
// callers that edit fields during interactive review must clone first.
func (d *ParsedResumeData) Clone() *ParsedResumeData {
	if d == nil {
		return nil
	}

	out := *d
	out.Work = make([]WorkEntry, len(d.Work))
	for i, w := range d.Work {
		w.Highlights = append([]string{}, w.Highlights...)
		out.Work[i] = w
	}
	out.Education = append([]EducationEntry{}, d.Education...)
	out.Skills = make([]SkillEntry, len(d.Skills))
	for i, s := range d.Skills {
		s.Keywords = append([]string{}, s.Keywords...)
		out.Skills[i] = s
	}
	out.Projects = make([]ProjectEntry, len(d.Projects))
	for i, p := range d.Projects {
		p.Highlights = append([]string{}, p.Highlights...)
		out.Projects[i] = p
	}
	out.Certificates = append([]CertificateEntry{}, d.Certificates...)
	out.Languages = append([]LanguageEntry{}, d.Languages...)
	return &out
}
