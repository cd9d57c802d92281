package crt

import "fmt"

// NoRecordFound - Custom error to inform that no record was found, used by iterators that are exhausted
type NoRecordFound struct {
	msg string
}

// Error - Used to notify that no record was found
func (E NoRecordFound) Error() string {
	if E.msg == "" {
		return "no record found"
	}
	return E.msg
}

// UnknownTechnique - Custom error to inform that a collision resolution technique is not supported
type UnknownTechnique struct {
	Technique int
}

// Error - Used to notify that the collision resolution technique is not supported
func (U UnknownTechnique) Error() string {
	return fmt.Sprintf("collision resolution technique %d is not supported", U.Technique)
}

// InvalidCapacity - Custom error to inform that a requested capacity can not be used
type InvalidCapacity struct {
	Capacity int
}

// Error - Used to notify that the requested capacity is invalid
func (I InvalidCapacity) Error() string {
	return fmt.Sprintf("capacity must be a positive value higher than 0 (zero), got %d", I.Capacity)
}
