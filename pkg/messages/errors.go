package messages

import "errors"

var ErrCatalogUnavailable = errors.New("messages: catalog unavailable")
