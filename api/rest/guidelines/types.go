package guidelines

// Item is one extracted guideline annotated with its source document.
type Item struct {
	Guideline string `json:"guideline"`
	Source    string `json:"source"`
}

type Response struct {
	Guidelines []Item `json:"guidelines"`
}
