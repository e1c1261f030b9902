package qa

import "strings"

// Fixed answers for extractors that find nothing. Extractors never fail:
// a total mismatch still produces readable text.
const (
	msgNoLastPosition = "Unable to identify the last position from the CV."
	msgNoExperience   = "No work experience section found in the CV."
	msgNoEducation    = "No education section found in the CV."
	msgNoSkills       = "No skills section found in the CV."
	msgNoContact      = "No contact information found in the CV."
)

const (
	maxExperienceLines = 5
	maxSkillItems      = 10
)

// extractLastPosition scans the experience section for job-title lines
// and answers with the most recent one. A date or company line closes the
// open candidate; an unrelated section header ends the scan entirely.
func extractLastPosition(doc Document) string {
	state := outside
	var lastPosition, currentPosition string
	var foundPositions []string

	for _, line := range doc.Lines() {
		var header bool
		if state, header = state.next(line, lastPositionKeywords); header {
			continue
		}
		if state != inSection {
			continue
		}

		if strings.TrimSpace(line) != "" && isValidJobTitle(line) {
			if currentPosition != "" {
				lastPosition = currentPosition
			}
			currentPosition = strings.TrimSpace(line)
			foundPositions = append(foundPositions, currentPosition)
		}

		if looksLikeDate(line) || looksLikeCompany(line) {
			if currentPosition != "" {
				lastPosition = currentPosition
				currentPosition = ""
			}
		}

		if isGenericHeader(line) {
			break
		}
	}

	if len(foundPositions) > 0 {
		return foundPositions[len(foundPositions)-1]
	}
	if lastPosition != "" {
		return lastPosition
	}
	if currentPosition != "" {
		return currentPosition
	}
	return msgNoLastPosition
}

// extractWorkExperience collects job-title, "@", and dated lines from the
// experience section, capped at maxExperienceLines.
func extractWorkExperience(doc Document) string {
	state := outside
	var experiences []string

	for _, line := range doc.Lines() {
		var header bool
		if state, header = state.next(line, sectionKeywords[sectionExperience]); header {
			continue
		}
		if state != inSection || strings.TrimSpace(line) == "" {
			continue
		}

		if looksLikeJobTitle(line) || strings.Contains(line, "@") || looksLikeDate(line) {
			experiences = append(experiences, strings.TrimSpace(line))
		}
	}

	if len(experiences) == 0 {
		return msgNoExperience
	}
	if len(experiences) > maxExperienceLines {
		experiences = experiences[:maxExperienceLines]
	}
	return "Work Experience:\n" + strings.Join(experiences, "\n")
}

// extractEducation collects degree, institution, and dated lines from the
// education section. Degree words match case-sensitively: "bachelor" in
// running text is not a qualification line.
func extractEducation(doc Document) string {
	state := outside
	var education []string

	degreeWords := []string{"Bachelor", "Master", "PhD", "University", "College"}

	for _, line := range doc.Lines() {
		var header bool
		if state, header = state.next(line, sectionKeywords[sectionEducation]); header {
			continue
		}
		if state != inSection || strings.TrimSpace(line) == "" {
			continue
		}

		matched := looksLikeDate(line)
		for _, word := range degreeWords {
			if strings.Contains(line, word) {
				matched = true
				break
			}
		}
		if matched {
			education = append(education, strings.TrimSpace(line))
		}
	}

	if len(education) == 0 {
		return msgNoEducation
	}
	return "Education:\n" + strings.Join(education, "\n")
}

// skillSeparators is the character class that splits a line listing
// several skills at once.
func isSkillSeparator(r rune) bool {
	return r == ',' || r == '•' || r == '-' || r == '*'
}

// extractSkills collects items from the skills section, splitting
// delimited lines into individual entries, capped at maxSkillItems.
func extractSkills(doc Document) string {
	state := outside
	var skills []string

	for _, line := range doc.Lines() {
		var header bool
		if state, header = state.next(line, sectionKeywords[sectionSkills]); header {
			continue
		}
		if state != inSection || strings.TrimSpace(line) == "" {
			continue
		}

		if strings.ContainsFunc(line, isSkillSeparator) {
			for _, part := range strings.FieldsFunc(line, isSkillSeparator) {
				if part = strings.TrimSpace(part); part != "" {
					skills = append(skills, part)
				}
			}
		} else {
			skills = append(skills, strings.TrimSpace(line))
		}
	}

	if len(skills) == 0 {
		return msgNoSkills
	}
	if len(skills) > maxSkillItems {
		skills = skills[:maxSkillItems]
	}
	return "Skills:\n" + strings.Join(skills, ", ")
}

// extractContact runs the email and phone regexes over the whole document
// rather than a section: contact details routinely sit in headers or
// footers outside any labeled section.
func extractContact(doc Document) string {
	var contact []string

	if email := emailRe.FindString(doc.Text()); email != "" {
		contact = append(contact, "Email: "+email)
	}
	if phone := phoneRe.FindString(doc.Text()); phone != "" {
		contact = append(contact, "Phone: "+phone)
	}

	if len(contact) == 0 {
		return msgNoContact
	}
	return "Contact Information:\n" + strings.Join(contact, "\n")
}
