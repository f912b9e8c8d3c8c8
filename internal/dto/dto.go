package dto

import (
	"github.com/go-playground/validator/v10"

	appErrors "github.com/creparitsdev-collab/SGI-FRONT-sub001/pkg/errors"
)

var validate = validator.New()

// Check validates a server-shaped payload before it leaves the gateway.
// The remote mutation client only ever receives payloads that pass here;
// the raw UI draft never crosses the wire.
func Check(payload interface{}) error {
	if err := validate.Struct(payload); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "payload failed validation")
	}
	return nil
}
