// Package scoring computes confidence reports for parsed résumé records.
// Confidence is a weighted completeness measure, not a correctness measure:
// the parser has no ground truth to compare against, so the score reflects
// how much of the expected structure was actually recovered.
package scoring

import (
	"math"

	"github.com/jonkmatsumo/resume-parser/internal/types"
)

// Relative weight of each section in the overall score.
const (
	basicsWeight       = 0.30
	workWeight         = 0.25
	educationWeight    = 0.15
	skillsWeight       = 0.15
	projectsWeight     = 0.05
	certificatesWeight = 0.05
	languagesWeight    = 0.05
)

// A present section starts from this base; the rest of its score comes from
// how many entries have their primary identifying fields populated.
const (
	presenceBase      = 40.0
	completenessShare = 60.0
)

// Weights for the individual basics fields; they sum to 100.
const (
	nameWeight     = 30.0
	emailWeight    = 20.0
	phoneWeight    = 15.0
	summaryWeight  = 15.0
	titleWeight    = 10.0
	locationWeight = 10.0
)

// CalculateConfidence produces an overall score and a per-section score for
// an assembled record. Every score is clamped to [0,100]; an absent section
// scores zero.
func CalculateConfidence(data *types.ParsedResumeData) types.ConfidenceReport {
	report := types.ConfidenceReport{Sections: make(map[string]int, len(types.AllSectionKinds)+1)}
	if data == nil {
		data = types.NewParsedResumeData()
	}

	basics := scoreBasics(&data.Basics)
	report.Sections[types.BasicsKey] = clamp(basics)
	report.Sections[string(types.SectionWork)] = clamp(scoreEntries(len(data.Work), workCompleteness(data.Work)))
	report.Sections[string(types.SectionEducation)] = clamp(scoreEntries(len(data.Education), educationCompleteness(data.Education)))
	report.Sections[string(types.SectionSkills)] = clamp(scoreEntries(len(data.Skills), skillCompleteness(data.Skills)))
	report.Sections[string(types.SectionProjects)] = clamp(scoreEntries(len(data.Projects), projectCompleteness(data.Projects)))
	report.Sections[string(types.SectionCertificates)] = clamp(scoreEntries(len(data.Certificates), certificateCompleteness(data.Certificates)))
	report.Sections[string(types.SectionLanguages)] = clamp(scoreEntries(len(data.Languages), languageCompleteness(data.Languages)))

	overall := basicsWeight*float64(report.Sections[types.BasicsKey]) +
		workWeight*float64(report.Sections[string(types.SectionWork)]) +
		educationWeight*float64(report.Sections[string(types.SectionEducation)]) +
		skillsWeight*float64(report.Sections[string(types.SectionSkills)]) +
		projectsWeight*float64(report.Sections[string(types.SectionProjects)]) +
		certificatesWeight*float64(report.Sections[string(types.SectionCertificates)]) +
		languagesWeight*float64(report.Sections[string(types.SectionLanguages)])
	report.Overall = clamp(overall)

	return report
}

// scoreEntries converts entry-level completeness into a section score:
// presence earns the base, average completeness earns the remainder.
func scoreEntries(count int, avgCompleteness float64) float64 {
	if count == 0 {
		return 0
	}
	return presenceBase + completenessShare*avgCompleteness
}

func scoreBasics(b *types.ParsedBasics) float64 {
	score := 0.0
	if b.Name != "" {
		score += nameWeight
	}
	if b.Email != "" {
		score += emailWeight
	}
	if b.Phone != "" {
		score += phoneWeight
	}
	if b.Summary != "" {
		score += summaryWeight
	}
	if b.Title != "" {
		score += titleWeight
	}
	if b.Location.City != "" || b.Location.Region != "" || b.Location.Country != "" {
		score += locationWeight
	}
	return score
}

// A work entry counts fully only when both position and company are present.
func workCompleteness(entries []types.WorkEntry) float64 {
	return average(len(entries), func(i int) float64 {
		return weigh(entries[i].Position != "", 0.5) + weigh(entries[i].Company != "", 0.5)
	})
}

func educationCompleteness(entries []types.EducationEntry) float64 {
	return average(len(entries), func(i int) float64 {
		return weigh(entries[i].StudyType != "", 0.5) + weigh(entries[i].Institution != "", 0.5)
	})
}

func skillCompleteness(entries []types.SkillEntry) float64 {
	return average(len(entries), func(i int) float64 {
		return weigh(entries[i].Name != "", 1.0)
	})
}

func projectCompleteness(entries []types.ProjectEntry) float64 {
	return average(len(entries), func(i int) float64 {
		return weigh(entries[i].Name != "", 0.7) +
			weigh(entries[i].Description != "" || len(entries[i].Highlights) > 0, 0.3)
	})
}

func certificateCompleteness(entries []types.CertificateEntry) float64 {
	return average(len(entries), func(i int) float64 {
		return weigh(entries[i].Name != "", 0.6) + weigh(entries[i].Issuer != "", 0.4)
	})
}

func languageCompleteness(entries []types.LanguageEntry) float64 {
	return average(len(entries), func(i int) float64 {
		return weigh(entries[i].Language != "", 0.6) + weigh(entries[i].Fluency != "", 0.4)
	})
}

func average(n int, completeness func(int) float64) float64 {
	if n == 0 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		total += completeness(i)
	}
	return total / float64(n)
}

func weigh(present bool, weight float64) float64 {
	if present {
		return weight
	}
	return 0
}

func clamp(score float64) int {
	rounded := int(math.Round(score))
	if rounded < 0 {
		return 0
	}
	if rounded > 100 {
		return 100
	}
	return rounded
}
