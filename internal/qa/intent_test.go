package qa

import "testing"

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		question string
		want     Intent
	}{
		{"What was my last position?", IntentLastPosition},
		{"LAST POSITION?", IntentLastPosition},
		{"what is my current role", IntentLastPosition},
		{"Tell me about my most recent job", IntentLastPosition},
		{"Describe my work experience", IntentWorkExperience},
		{"show my work history", IntentWorkExperience},
		{"What is my education?", IntentEducation},
		{"Which degree do I hold?", IntentEducation},
		{"Which university did I attend?", IntentEducation},
		{"List my skills", IntentSkills},
		{"What technology do I know?", IntentSkills},
		{"How can someone contact me?", IntentContact},
		{"What is my email?", IntentContact},
		{"What is my phone number?", IntentContact},
		{"Do you like painting?", IntentGeneral},
		{"", IntentGeneral},
	}
	for _, tt := range tests {
		if got := ClassifyIntent(tt.question); got != tt.want {
			t.Errorf("ClassifyIntent(%q) = %v, want %v", tt.question, got, tt.want)
		}
	}
}

func TestClassifyIntent_PriorityOrder(t *testing.T) {
	// "last position" routes before the broader "experience" even when
	// both keyword sets match.
	q := "What was my last position during my experience at the company?"
	if got := ClassifyIntent(q); got != IntentLastPosition {
		t.Errorf("ClassifyIntent(%q) = %v, want %v", q, got, IntentLastPosition)
	}

	// "experience" beats "education" by order.
	q = "Compare my experience and education"
	if got := ClassifyIntent(q); got != IntentWorkExperience {
		t.Errorf("ClassifyIntent(%q) = %v, want %v", q, got, IntentWorkExperience)
	}
}
