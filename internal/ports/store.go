package ports

import "errors"

// ErrRecordNotFound — запись исчезла из хранилища между поиском и записью.
var ErrRecordNotFound = errors.New("record not found")
