package combat

import (
	"errors"
	"fmt"
)

var (
	//ErrMissingRecord is returned when a referenced row does not exist
	ErrMissingRecord = errors.New("data not found")
	//ErrPrecondition is returned when required build fields are missing
	ErrPrecondition = errors.New("precondition unmet")
	//ErrDataLoad is returned when the tables could not be loaded
	ErrDataLoad = errors.New("data load failure")
)

//MissingRecordError names the table and key that could not be found
type MissingRecordError struct {
	Table string
	Key   string
}

func (e *MissingRecordError) Error() string {
	return fmt.Sprintf("%v: %v %q", ErrMissingRecord, e.Table, e.Key)
}

func (e *MissingRecordError) Unwrap() error {
	return ErrMissingRecord
}

func missing(table, key string) error {
	return &MissingRecordError{Table: table, Key: key}
}
