package normalize

var statusVocabulary = newVocabulary(
	[]string{StatusPlanned, StatusRunning, StatusFinished, StatusRejected},
	map[string]string{
		StatusPlanned:  "계획",
		StatusRunning:  "진행 중",
		StatusFinished: "종료",
		StatusRejected: "반려",
	},
	// enum values of the approval-workflow schema
	map[string]string{
		"pending":     StatusPlanned,
		"in_progress": StatusRunning,
		"ongoing":     StatusRunning,
		"completed":   StatusFinished,
		"closed":      StatusFinished,
	},
	map[string]string{
		"승인 전":  StatusPlanned,
		"승인 완료": StatusRunning,
		"진행 완료": StatusFinished,
		"진행중":   StatusRunning,
		"승인전":   StatusPlanned,
		"승인완료":  StatusRunning,
		"진행완료":  StatusFinished,
	},
	map[string]string{
		"approved": StatusRunning,
		"active":   StatusRunning,
		"draft":    StatusPlanned,
		"ended":    StatusFinished,
		"done":     StatusFinished,
	},
	StatusPlanned,
)

// Status resolves a raw status value from either schema generation.
func Status(raw string) Pair {
	return statusVocabulary.resolve(raw)
}

// IsStatus reports whether code is one of the canonical status codes.
func IsStatus(code string) bool {
	return statusVocabulary.known(code)
}

// StatusVariants returns the lowercased spellings stored rows may use for the
// canonical status code, including the code itself. Match them against
// LOWER(TRIM(column)) so any casing of a stored value qualifies.
func StatusVariants(code string) []string {
	return statusVocabulary.variants(code)
}

// StatusCodes returns the canonical status codes in lifecycle order.
func StatusCodes() []string {
	return append([]string(nil), statusVocabulary.order...)
}
