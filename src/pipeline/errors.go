package pipeline

import "errors"

// Fatal pipeline conditions. Each stage reports these as close to the source
// as possible; callers stop the run and surface them to the operator.
var (
	ErrNoColumns        = errors.New("table has no columns")
	ErrNoRows           = errors.New("table has no rows")
	ErrNoNumericColumns = errors.New("table has no numeric columns")
	ErrNoSelection      = errors.New("no string columns selected")
)
