package parsing

import "github.com/omkar/resume-checker/internal/types"

// ParseProfile runs every field extractor over the resume text and assembles
// the complete structured profile. Extractors are independent; an empty or
// pattern-free input yields a profile full of sentinels, never an error.
func ParseProfile(text string) types.ParsedProfile {
	return types.ParsedProfile{
		Name:            ExtractName(text),
		Email:           ExtractEmail(text),
		Phone:           ExtractPhone(text),
		Location:        ExtractLocation(text),
		LinkedIn:        ExtractLinkedIn(text),
		GitHub:          ExtractGitHub(text),
		Skills:          ExtractSkills(text),
		ExperienceLevel: ExtractExperienceLevel(text),
		Experience:      ExtractExperience(text),
		Education:       ExtractEducation(text),
		Projects:        ExtractProjects(text),
		Summary:         ExtractSummary(text),
		Languages:       ExtractLanguages(text),
		Achievements:    ExtractAchievements(text),
		Hobbies:         ExtractHobbies(text),
		Certifications:  ExtractCertifications(text),
	}
}
