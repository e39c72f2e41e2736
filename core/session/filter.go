package session

import "iter"

// MatchingCourse returns a lazy, restartable sequence of the sessions whose
// course title equals the selected title exactly (case-sensitive), preserving
// input order.
//
// Contract for the empty selection: no course selected means no sessions. A
// session choice is only meaningful once a course is chosen, so the session
// picker stays empty until then.
func MatchingCourse(sessions []Session, courseTitle string) iter.Seq[Session] {
	return func(yield func(Session) bool) {
		if courseTitle == "" {
			return
		}
		for _, s := range sessions {
			if s.CourseTitle != courseTitle {
				continue
			}
			if !yield(s) {
				return
			}
		}
	}
}
