package assessments

// Builder helpers return a modified deep copy and never mutate the
// input assessment. Order values of surviving siblings are preserved as
// is, so removals may leave gaps; rendering sorts by Order and tolerates
// non-contiguous values.

// Clone returns a deep copy of the assessment.
func Clone(a Assessment) Assessment {
	out := a
	out.Sections = cloneSections(a.Sections)
	return out
}

// AddSection appends a section. A non-positive Order is replaced with
// one past the current maximum.
func AddSection(a Assessment, s Section) Assessment {
	out := Clone(a)
	if s.Order <= 0 {
		s.Order = maxSectionOrder(out.Sections) + 1
	}
	s.Questions = cloneQuestions(s.Questions)
	if s.Questions == nil {
		s.Questions = []Question{}
	}
	out.Sections = append(out.Sections, s)
	return out
}

// UpdateSection replaces the title, description, and order of the
// matching section. Questions are kept unless s.Questions is non-nil.
func UpdateSection(a Assessment, s Section) (Assessment, bool) {
	out := Clone(a)
	for i := range out.Sections {
		if out.Sections[i].ID != s.ID {
			continue
		}
		out.Sections[i].Title = s.Title
		out.Sections[i].Description = s.Description
		if s.Order > 0 {
			out.Sections[i].Order = s.Order
		}
		if s.Questions != nil {
			out.Sections[i].Questions = cloneQuestions(s.Questions)
		}
		return out, true
	}
	return out, false
}

// RemoveSection deletes the section with the given id.
func RemoveSection(a Assessment, sectionID string) (Assessment, bool) {
	out := Clone(a)
	for i := range out.Sections {
		if out.Sections[i].ID == sectionID {
			out.Sections = append(out.Sections[:i], out.Sections[i+1:]...)
			return out, true
		}
	}
	return out, false
}

// AddQuestion appends a question to the named section. A non-positive
// Order is replaced with one past the section's current maximum.
func AddQuestion(a Assessment, sectionID string, q Question) (Assessment, bool) {
	out := Clone(a)
	for i := range out.Sections {
		if out.Sections[i].ID != sectionID {
			continue
		}
		if q.Order <= 0 {
			q.Order = maxQuestionOrder(out.Sections[i].Questions) + 1
		}
		out.Sections[i].Questions = append(out.Sections[i].Questions, cloneQuestion(q))
		return out, true
	}
	return out, false
}

// UpdateQuestion replaces the matching question wholesale. A
// non-positive Order keeps the stored one.
func UpdateQuestion(a Assessment, sectionID string, q Question) (Assessment, bool) {
	out := Clone(a)
	for i := range out.Sections {
		if out.Sections[i].ID != sectionID {
			continue
		}
		for j := range out.Sections[i].Questions {
			if out.Sections[i].Questions[j].ID != q.ID {
				continue
			}
			if q.Order <= 0 {
				q.Order = out.Sections[i].Questions[j].Order
			}
			out.Sections[i].Questions[j] = cloneQuestion(q)
			return out, true
		}
	}
	return out, false
}

// RemoveQuestion deletes a question from the named section.
func RemoveQuestion(a Assessment, sectionID, questionID string) (Assessment, bool) {
	out := Clone(a)
	for i := range out.Sections {
		if out.Sections[i].ID != sectionID {
			continue
		}
		for j := range out.Sections[i].Questions {
			if out.Sections[i].Questions[j].ID == questionID {
				out.Sections[i].Questions = append(out.Sections[i].Questions[:j], out.Sections[i].Questions[j+1:]...)
				return out, true
			}
		}
	}
	return out, false
}

func cloneSections(sections []Section) []Section {
	if sections == nil {
		return nil
	}
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = s
		out[i].Questions = cloneQuestions(s.Questions)
	}
	return out
}

func cloneQuestions(questions []Question) []Question {
	if questions == nil {
		return nil
	}
	out := make([]Question, len(questions))
	for i, q := range questions {
		out[i] = cloneQuestion(q)
	}
	return out
}

func cloneQuestion(q Question) Question {
	out := q
	out.Options = append([]string(nil), q.Options...)
	if q.Validation != nil {
		v := *q.Validation
		if q.Validation.Min != nil {
			min := *q.Validation.Min
			v.Min = &min
		}
		if q.Validation.Max != nil {
			max := *q.Validation.Max
			v.Max = &max
		}
		if q.Validation.MaxLength != nil {
			maxLen := *q.Validation.MaxLength
			v.MaxLength = &maxLen
		}
		out.Validation = &v
	}
	if q.ConditionalLogic != nil {
		cl := *q.ConditionalLogic
		out.ConditionalLogic = &cl
	}
	return out
}

func maxSectionOrder(sections []Section) int {
	max := 0
	for _, s := range sections {
		if s.Order > max {
			max = s.Order
		}
	}
	return max
}

func maxQuestionOrder(questions []Question) int {
	max := 0
	for _, q := range questions {
		if q.Order > max {
			max = q.Order
		}
	}
	return max
}
