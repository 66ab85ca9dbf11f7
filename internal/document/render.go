package document

import (
	"context"

	json "github.com/goccy/go-json"
)

// Renderer turns a document tree into a byte stream. PDF rendering is an
// external collaborator implementing this interface; completion may be
// asynchronous, hence the context.
type Renderer interface {
	Render(ctx context.Context, doc *Document) ([]byte, error)
}

// JSONRenderer serializes the document tree as indented JSON. It backs the
// download endpoint and doubles as the hand-off format for viewers.
type JSONRenderer struct{}

func (JSONRenderer) Render(ctx context.Context, doc *Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return json.MarshalIndent(doc, "", "  ")
}
