package deliveries_get

import "errors"

var errUnknownStatus = errors.New("unknown delivery status")
