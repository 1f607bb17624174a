package completion

import (
	"fmt"

	"github.com/Durgaprasad2408/BrainCell-sub002/internal/catalog"
)

// RemoteConfirmationError indicates the platform did not confirm a
// completion. Local progress is untouched and the call may be retried.
type RemoteConfirmationError struct {
	ItemID string
	Err    error
}

func (e *RemoteConfirmationError) Error() string {
	return fmt.Sprintf("completion of %q not confirmed: %v", e.ItemID, e.Err)
}

func (e *RemoteConfirmationError) Unwrap() error { return e.Err }

// WrongTriggerError indicates a completion was attempted through a
// trigger that does not match the item's kind, e.g. a manual
// acknowledgement on a quiz.
type WrongTriggerError struct {
	ItemID  string
	Kind    catalog.Kind
	Trigger Trigger
}

func (e *WrongTriggerError) Error() string {
	return fmt.Sprintf("item %q (%s) cannot be completed via %s", e.ItemID, e.Kind, e.Trigger)
}
