package constants

// Pagination limits for project listing
const (
	MinPage         = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// MaxQuestionLength caps the length of a question sent to the insight layer.
const MaxQuestionLength = 1000
