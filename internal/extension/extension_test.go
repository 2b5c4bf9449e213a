package extension

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/thirteen37/underlinee/internal/editor"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry()
	calls := 0

	d, err := reg.Add("b", func(ctx context.Context) error { calls++; return nil })
	if err != nil {
		t.Fatalf("Add(b) error = %v", err)
	}
	if _, err := reg.Add("a", func(ctx context.Context) error { return errors.New("boom") }); err != nil {
		t.Fatalf("Add(a) error = %v", err)
	}
	if _, err := reg.Add("b", func(ctx context.Context) error { return nil }); err == nil {
		t.Error("Add(b) twice expected error")
	}

	if got, want := reg.Names(), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	if err := reg.Dispatch(ctx, "b"); err != nil {
		t.Errorf("Dispatch(b) error = %v", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if err := reg.Dispatch(ctx, "a"); err == nil || err.Error() != "boom" {
		t.Errorf("Dispatch(a) error = %v, want boom", err)
	}

	d.Dispose()
	if err := reg.Dispatch(ctx, "b"); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Dispatch(b) after dispose error = %v, want ErrUnknownCommand", err)
	}
	if got, want := reg.Names(), []string{"a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestSubscriptionsDispose(t *testing.T) {
	var order []int
	subs := &Subscriptions{}
	subs.Add(DisposeFunc(func() { order = append(order, 1) }))
	subs.Add(DisposeFunc(func() { order = append(order, 2) }))
	if subs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", subs.Len())
	}

	subs.Dispose()
	subs.Dispose()
	if want := []int{2, 1}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	if subs.Len() != 0 {
		t.Errorf("Len() = %d after Dispose", subs.Len())
	}

	// Adding to a disposed set disposes immediately.
	subs.Add(DisposeFunc(func() { order = append(order, 3) }))
	if want := []int{2, 1, 3}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestActivateDeactivate(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry()
	b := editor.NewBuffer("# short\n")

	subs, err := Activate(reg, editor.NewWorkspace(b))
	if err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if got, want := reg.Names(), []string{GenerateComment}; !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}

	if err := reg.Dispatch(ctx, GenerateComment); err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if got, want := b.String(), "# short\n# =====\n"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}

	if _, err := Activate(reg, editor.NewWorkspace(b)); err == nil {
		t.Error("second Activate on the same registry expected error")
	}

	Deactivate(ctx, subs)
	if got := reg.Names(); len(got) != 0 {
		t.Errorf("Names() = %v after Deactivate", got)
	}
	if err := reg.Dispatch(ctx, GenerateComment); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Dispatch() after Deactivate error = %v, want ErrUnknownCommand", err)
	}

	Deactivate(ctx, nil)
}

func TestGenerateCommentWithoutEditor(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry()
	subs, err := Activate(reg, editor.NewWorkspace(nil))
	if err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	defer Deactivate(ctx, subs)

	if err := reg.Dispatch(ctx, GenerateComment); err != nil {
		t.Errorf("Dispatch() error = %v", err)
	}
}
