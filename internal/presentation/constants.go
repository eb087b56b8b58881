package presentation

const (
	// ContextClaimsKey holds the verified token claims in the echo context.
	ContextClaimsKey = "claims"

	IDParam      = "id"
	SectionParam = "section"
	EmailParam   = "email"
)
