package parsing

import (
	"github.com/jonkmatsumo/resume-parser/internal/types"
)

// The heuristic vocabularies below are static, process-wide lookup tables
// keyed by lowercase canonical strings. Matching is case-insensitive and the
// first matching entry wins, so multi-word synonyms are listed before the
// single-word synonyms they contain.

// headingSynonym maps one recognized heading variant to a canonical section.
type headingSynonym struct {
	text string
	kind types.SectionKind
}

var sectionHeadings = []headingSynonym{
	{"work experience", types.SectionWork},
	{"professional experience", types.SectionWork},
	{"employment history", types.SectionWork},
	{"work history", types.SectionWork},
	{"relevant experience", types.SectionWork},
	{"experience", types.SectionWork},
	{"employment", types.SectionWork},
	{"academic background", types.SectionEducation},
	{"education and training", types.SectionEducation},
	{"education", types.SectionEducation},
	{"academics", types.SectionEducation},
	{"technical skills", types.SectionSkills},
	{"core competencies", types.SectionSkills},
	{"skills and abilities", types.SectionSkills},
	{"areas of expertise", types.SectionSkills},
	{"skills", types.SectionSkills},
	{"competencies", types.SectionSkills},
	{"key projects", types.SectionProjects},
	{"personal projects", types.SectionProjects},
	{"selected projects", types.SectionProjects},
	{"projects", types.SectionProjects},
	{"professional certifications", types.SectionCertificates},
	{"licenses and certifications", types.SectionCertificates},
	{"certifications", types.SectionCertificates},
	{"certificates", types.SectionCertificates},
	{"certification", types.SectionCertificates},
	{"language skills", types.SectionLanguages},
	{"languages", types.SectionLanguages},
}

// summaryHeadings mark the free-text summary block. Summary is a basics
// field, not a SectionKind, so these never appear in DetectSections output.
var summaryHeadings = []string{
	"professional summary",
	"career objective",
	"executive summary",
	"summary",
	"objective",
	"profile",
	"about me",
	"about",
}

// degreeSynonym maps a degree prefix to its canonical study type. Longer
// variants precede the abbreviations they contain.
type degreeSynonym struct {
	text      string
	canonical string
}

var degreeTypes = []degreeSynonym{
	{"bachelor of science", "Bachelor of Science"},
	{"bachelor of arts", "Bachelor of Arts"},
	{"bachelor of engineering", "Bachelor of Engineering"},
	{"bachelor of business administration", "Bachelor of Business Administration"},
	{"bachelors", "Bachelor"},
	{"bachelor", "Bachelor"},
	{"master of science", "Master of Science"},
	{"master of arts", "Master of Arts"},
	{"master of engineering", "Master of Engineering"},
	{"master of business administration", "Master of Business Administration"},
	{"masters", "Master"},
	{"master", "Master"},
	{"doctor of philosophy", "Doctor of Philosophy"},
	{"doctorate", "Doctorate"},
	{"ph.d.", "PhD"},
	{"ph.d", "PhD"},
	{"phd", "PhD"},
	{"m.b.a.", "MBA"},
	{"m.b.a", "MBA"},
	{"mba", "MBA"},
	{"b.sc.", "BSc"},
	{"b.sc", "BSc"},
	{"bsc", "BSc"},
	{"b.s.", "BS"},
	{"b.s", "BS"},
	{"bs", "BS"},
	{"b.a.", "BA"},
	{"b.a", "BA"},
	{"ba", "BA"},
	{"b.eng.", "BEng"},
	{"b.eng", "BEng"},
	{"m.sc.", "MSc"},
	{"m.sc", "MSc"},
	{"msc", "MSc"},
	{"m.s.", "MS"},
	{"m.s", "MS"},
	{"ms", "MS"},
	{"m.a.", "MA"},
	{"m.a", "MA"},
	{"ma", "MA"},
	{"m.eng.", "MEng"},
	{"m.eng", "MEng"},
	{"associate of science", "Associate of Science"},
	{"associate of arts", "Associate of Arts"},
	{"associate degree", "Associate"},
	{"associate", "Associate"},
}

// roleNouns are the job-title nouns recognized by ExtractTitle. A title line
// is a role noun optionally preceded by seniority/domain modifiers.
var roleNouns = map[string]bool{
	"engineer":      true,
	"developer":     true,
	"programmer":    true,
	"manager":       true,
	"analyst":       true,
	"designer":      true,
	"architect":     true,
	"consultant":    true,
	"specialist":    true,
	"coordinator":   true,
	"administrator": true,
	"scientist":     true,
	"researcher":    true,
	"director":      true,
	"lead":          true,
	"intern":        true,
	"technician":    true,
	"accountant":    true,
	"recruiter":     true,
}

// fluencyLevels is the closed vocabulary for LanguageEntry.Fluency. Any
// qualifier outside this table leaves fluency absent.
var fluencyLevels = map[string]string{
	"native":       "Native",
	"fluent":       "Fluent",
	"professional": "Professional",
	"intermediate": "Intermediate",
	"beginner":     "Beginner",
}
