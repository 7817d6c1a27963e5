package bootstrap

import "errors"

// DatasetLoadError wraps a failure to open or parse the training set. It is fatal at startup.
type DatasetLoadError struct {
	Source string
	Err    error
}

func (e *DatasetLoadError) Error() string { return "load dataset " + e.Source + ": " + e.Err.Error() }

func (e *DatasetLoadError) Unwrap() error { return e.Err }

// IsDatasetLoad reports whether err is a DatasetLoadError.
func IsDatasetLoad(err error) bool {
	var e *DatasetLoadError
	return errors.As(err, &e)
}
