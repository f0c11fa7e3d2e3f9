package vanilla

import (
	"context"
	"fmt"

	"github.com/goliatone/go-formcheck/pkg/dom"
	"github.com/goliatone/go-formcheck/pkg/form"
)

// StatusNotifier writes success notifications into the page banner.
type StatusNotifier struct {
	Doc *dom.Document
	ID  string
}

var _ form.Notifier = StatusNotifier{}

// Notify sets the banner text and shows it.
func (n StatusNotifier) Notify(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id := n.ID
	if id == "" {
		id = DefaultStatusID
	}
	el, err := n.Doc.Element(id)
	if err != nil {
		return fmt.Errorf("vanilla: status banner: %w", err)
	}
	el.SetText(message)
	el.Show()
	return nil
}
