package models

import "errors"

// ErrInvalidAssumption is returned when a configured input breaks the model's
// preconditions: a negative monetary or count field, a non-positive capacity,
// or a usage sequence whose length does not match the operating slot count.
// There is no recovery path; callers let it propagate to the process boundary.
var ErrInvalidAssumption = errors.New("invalid assumption")
