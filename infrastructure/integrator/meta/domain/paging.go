package metadomain

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// Paging é o envelope de paginação por cursor da Graph API. Next, quando
// presente, pode vir como URL absoluta com a credencial embutida.
type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}
