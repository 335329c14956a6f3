package generator

import "errors"

var (
	ErrUnknownClinic = errors.New("unknown clinic")
	ErrNoPatients    = errors.New("no patients to assign appointments to")
)
