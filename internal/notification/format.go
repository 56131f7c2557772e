package notification

// numberedEmployment pairs an employment record with its 1-based position
// among the filled records.
type numberedEmployment struct {
	Number int
	EmploymentRecord
}

// numberedReference pairs a reference with its 1-based position among the
// filled references.
type numberedReference struct {
	Number int
	Reference
}

// filledEmployment drops blank rows and numbers the rest. Numbering follows
// the filtered order, so gaps in the submitted slice do not show.
func filledEmployment(records []EmploymentRecord) []numberedEmployment {
	var out []numberedEmployment
	for _, r := range records {
		if r.Employer == "" {
			continue
		}
		out = append(out, numberedEmployment{Number: len(out) + 1, EmploymentRecord: r})
	}
	return out
}

func filledEducation(records []EducationRecord) []EducationRecord {
	var out []EducationRecord
	for _, r := range records {
		if r.Institution != "" {
			out = append(out, r)
		}
	}
	return out
}

func filledTraining(records []TrainingRecord) []TrainingRecord {
	var out []TrainingRecord
	for _, r := range records {
		if r.Course != "" {
			out = append(out, r)
		}
	}
	return out
}

func filledReferences(refs []Reference) []numberedReference {
	var out []numberedReference
	for _, r := range refs {
		if r.Name == "" {
			continue
		}
		out = append(out, numberedReference{Number: len(out) + 1, Reference: r})
	}
	return out
}
