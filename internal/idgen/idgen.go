package idgen

import "github.com/google/uuid"

// NewFunc generates a unique identifier. Tests may replace it to get
// predictable ids.
var NewFunc = func() string { return uuid.New().String() }

// New returns a new globally unique identifier as a string.
func New() string { return NewFunc() }
