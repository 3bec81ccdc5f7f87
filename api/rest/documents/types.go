package documents

// UploadResponse is returned after a successful ingestion.
type UploadResponse struct {
	ID         string `json:"id"`
	Preview    string `json:"preview"`
	Guidelines int    `json:"guidelines"`
}

// ListItem is one row of the documents listing.
type ListItem struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Date     string `json:"date"`
	File     string `json:"file"`
	Preview  string `json:"preview"`
}

// ListResponse carries the total match count alongside the current page.
type ListResponse struct {
	Total int        `json:"total"`
	Data  []ListItem `json:"data"`
}
