// Package document projects the agreement state into a declarative block
// tree for an external renderer. The renderer (PDF viewer or file writer)
// is a black box; this package only assembles the tree and names the file.
package document

type Document struct {
	FileName string  `json:"file_name"`
	Blocks   []Block `json:"blocks"`
}

// Block is one node of the document tree. Kind selects which of the
// optional fields are populated.
type Block struct {
	Kind    string     `json:"kind"`
	Title   string     `json:"title,omitempty"`
	Text    string     `json:"text,omitempty"`
	Columns []string   `json:"columns,omitempty"`
	Rows    [][]string `json:"rows,omitempty"`
	Items   []string   `json:"items,omitempty"`
	Header  *Header    `json:"header,omitempty"`
	Summary *Summary   `json:"summary,omitempty"`
}

const (
	KindHeader    = "header"
	KindParagraph = "paragraph"
	KindTable     = "table"
	KindBullets   = "bullets"
	KindSummary   = "pricing_summary"
	KindFooter    = "footer"
)

type Header struct {
	ClientLogoURL string `json:"client_logo_url,omitempty"` // empty renders a placeholder
	ProviderName  string `json:"provider_name"`
	Title         string `json:"title"`
	Date          string `json:"date"`
}

type Summary struct {
	GrandTotal string    `json:"grand_total"`
	Fees       []FeeLine `json:"fees"`
	Notes      []string  `json:"notes,omitempty"`
}

// FeeLine renders one fee row. When the fee has been edited away from its
// default, the default amount is shown struck through next to the edited
// value; a fee still at its default is rendered plainly.
type FeeLine struct {
	Label         string `json:"label"`
	Amount        string `json:"amount"`
	DefaultAmount string `json:"default_amount,omitempty"`
	StrikeDefault bool   `json:"strike_default,omitempty"`
}
