package serviceorder

import (
	"fmt"

	"github.com/wevertonvip010/vipmudancas-api-sub000/internal/pkg/errs"
)

// ChecklistKind names one of the two checklists carried by a service order.
type ChecklistKind string

const (
	// PreService is the checklist worked through before the job starts.
	PreService ChecklistKind = "pre"

	// PostService is the checklist that gates completion: every item must
	// be done before the order can transition to Completed.
	PostService ChecklistKind = "post"
)

// Validate checks the kind is one of the two named checklists.
func (k ChecklistKind) Validate() error {
	if k != PreService && k != PostService {
		return errs.NewValueIsInvalidErrorWithCause("checklist",
			fmt.Errorf("%q is not a valid checklist kind", string(k)))
	}
	return nil
}

// ChecklistItem is a single labeled step with a done flag.
type ChecklistItem struct {
	Label string
	Done  bool
}

// Checklist is an ordered list of items, unique by label.
type Checklist struct {
	items []ChecklistItem
}

// NewChecklist creates a checklist from item labels (all initially not done).
// Duplicate labels are rejected so the item-by-item update path stays
// unambiguous.
func NewChecklist(labels []string) (Checklist, error) {
	seen := make(map[string]struct{}, len(labels))
	items := make([]ChecklistItem, 0, len(labels))
	for _, label := range labels {
		if label == "" {
			return Checklist{}, errs.NewValueIsRequiredError("checklist item label")
		}
		if _, dup := seen[label]; dup {
			return Checklist{}, errs.NewValueIsInvalidErrorWithCause("checklist",
				fmt.Errorf("duplicate item label %q", label))
		}
		seen[label] = struct{}{}
		items = append(items, ChecklistItem{Label: label})
	}

	return Checklist{items: items}, nil
}

// RestoreChecklist rebuilds a checklist from persisted items.
func RestoreChecklist(items []ChecklistItem) Checklist {
	restored := make([]ChecklistItem, len(items))
	copy(restored, items)
	return Checklist{items: restored}
}

// Items returns a copy of the checklist items in order.
func (c Checklist) Items() []ChecklistItem {
	items := make([]ChecklistItem, len(c.items))
	copy(items, c.items)
	return items
}

// Len returns the number of items.
func (c Checklist) Len() int {
	return len(c.items)
}

// SetDone updates the done flag of the item with the given label.
// Returns ObjectNotFoundError when no item carries the label.
func (c *Checklist) SetDone(label string, done bool) error {
	for i := range c.items {
		if c.items[i].Label == label {
			c.items[i].Done = done
			return nil
		}
	}
	return errs.NewObjectNotFoundError("checklist item", label)
}

// AllDone reports whether every item is marked done. An empty checklist is
// trivially done.
func (c Checklist) AllDone() bool {
	for _, item := range c.items {
		if !item.Done {
			return false
		}
	}
	return true
}
