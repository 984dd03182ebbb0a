package snippets

type Doc struct {
	ID      string
	Title   string
	Content string

	words []string
}
