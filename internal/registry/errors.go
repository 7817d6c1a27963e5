package registry

import (
	"errors"
	"net/http"

	"github.com/lgtm-migrator/mecj-demo/pkg/types"
)

// ErrNotReady is matched by errors.Is for any NotReadyError.
var ErrNotReady = errors.New("classifier not ready")

// ErrAlreadyPublished is returned by a second Publish.
var ErrAlreadyPublished = errors.New("tabular model already published")

// NotReadyError signals an unset slot; handlers map it to 500.
type NotReadyError struct{ Slot types.Slot }

func (e NotReadyError) Error() string { return "classifier not ready: " + string(e.Slot) }

func (e NotReadyError) Is(target error) bool { return target == ErrNotReady }

// StatusCode maps the error to 500 Internal Server Error.
func (e NotReadyError) StatusCode() int { return http.StatusInternalServerError }

// IsNotReady reports whether err indicates an unset slot.
func IsNotReady(err error) bool { return errors.Is(err, ErrNotReady) }

type unknownSlotError struct{ slot types.Slot }

func (e unknownSlotError) Error() string { return "unknown model slot: " + string(e.slot) }
