package evaluation

// gradeFor maps a percentage to a letter grade. Thresholds are inclusive
// lower bounds checked highest first.
func gradeFor(percentage int) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B"
	case percentage >= 60:
		return "C"
	default:
		return "Fail"
	}
}
