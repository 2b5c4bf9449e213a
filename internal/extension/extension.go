package extension

import (
	"context"

	"github.com/go-courier/logr"
	"github.com/thirteen37/underlinee/internal/editor"
)

// GenerateComment is the name of the command that inserts a decorative comment.
const GenerateComment = "underlinee:generate-comment"

// Activate registers the underlinee commands against ws and returns the
// handle that Deactivate tears down.
func Activate(reg *Registry, ws editor.Workspace) (*Subscriptions, error) {
	subs := &Subscriptions{}

	d, err := reg.Add(GenerateComment, func(ctx context.Context) error {
		editor.InsertComment(ctx, ws)
		return nil
	})
	if err != nil {
		subs.Dispose()
		return nil, err
	}
	subs.Add(d)

	return subs, nil
}

// Deactivate releases everything registered by Activate.
func Deactivate(ctx context.Context, subs *Subscriptions) {
	if subs == nil {
		return
	}
	logr.FromContext(ctx).WithValues("subscriptions", subs.Len()).Debug("deactivating")
	subs.Dispose()
}
