package services

const QuestionsPerPage = 10

// Paginate returns the 1-based page of items. Pages below 1 or past the end
// are empty.
func Paginate[T any](page int, items []T) []T {
	if page < 1 {
		return []T{}
	}
	start := (page - 1) * QuestionsPerPage
	if start >= len(items) {
		return []T{}
	}
	end := min(start+QuestionsPerPage, len(items))
	return items[start:end]
}
