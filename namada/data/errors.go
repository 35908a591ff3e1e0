package data

import "errors"

var errMarshalTx = errors.New("unable to marshal transaction envelope")
