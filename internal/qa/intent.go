package qa

import "strings"

// Intent is the category a question is routed to. It selects which
// extractor runs against the document.
type Intent string

const (
	IntentLastPosition   Intent = "last_position"
	IntentWorkExperience Intent = "work_experience"
	IntentEducation      Intent = "education"
	IntentSkills         Intent = "skills"
	IntentContact        Intent = "contact"
	IntentGeneral        Intent = "general"
)

// intentRoute pairs an intent with the question keywords that select it.
type intentRoute struct {
	intent   Intent
	keywords []string
}

// intentRoutes are tested in order; the first route whose keyword appears
// in the lower-cased question wins. Order matters: "last position" must be
// checked before the broader "experience".
var intentRoutes = []intentRoute{
	{IntentLastPosition, []string{"last position", "current role", "most recent job"}},
	{IntentWorkExperience, []string{"experience", "work history"}},
	{IntentEducation, []string{"education", "degree", "university"}},
	{IntentSkills, []string{"skill", "technology"}},
	{IntentContact, []string{"contact", "email", "phone"}},
}

// ClassifyIntent maps a free-text question to an Intent by substring
// keyword matching. Questions matching no route fall through to
// IntentGeneral.
func ClassifyIntent(question string) Intent {
	q := strings.ToLower(question)
	for _, route := range intentRoutes {
		if containsAny(q, route.keywords) {
			return route.intent
		}
	}
	return IntentGeneral
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
