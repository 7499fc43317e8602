package struck

import "errors"

// ErrNotInitialised is returned by Track when called before Initialise.
var ErrNotInitialised = errors.New("struck: tracker not initialised")

// ErrNoSamples is returned when every candidate box around the search
// center fell outside the frame, leaving nothing to score or train on.
var ErrNoSamples = errors.New("struck: no in-bounds candidate samples")
