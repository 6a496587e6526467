// Package utils provides common utility functions for the ESL Manager.
// It includes helper functions for type conversion over loosely typed values,
// primarily used when normalizing fields from vendor API payloads whose JSON
// types vary between platform versions (numeric ids vs string ids).
package utils
