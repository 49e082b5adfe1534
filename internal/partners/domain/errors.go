package domain

import "errors"

var ErrNotFound = errors.New("partner not found")
