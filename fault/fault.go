// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type EmptyError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ProcessError("already initialised")
	ErrConfigurationNotTable = InvalidError("configuration must return a table")
	ErrDuplicateKey          = ExistsError("duplicate key")
	ErrEmptyTree             = EmptyError("tree is empty")
	ErrInvalidCount          = InvalidError("node count is inconsistent")
	ErrInvalidDirectory      = InvalidError("invalid directory")
	ErrInvalidFormat         = InvalidError("invalid output format")
	ErrInvalidKey            = InvalidError("invalid key")
	ErrInvalidLoggerChannel  = ProcessError("invalid logger channel")
	ErrInvalidOrder          = InvalidError("invalid traversal order")
	ErrInvalidRange          = InvalidError("invalid key range")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrKeyNotFound           = NotFoundError("key not found")
	ErrMissingSink           = ProcessError("output sink is missing")
	ErrNotFoundConfigFile    = NotFoundError("configuration file is not found")
	ErrUnbalancedNode        = InvalidError("node is unbalanced")
	ErrUnorderedKeys         = InvalidError("keys are not in order")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// Error - the error interface methods
func (e EmptyError) Error() string    { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// IsErrEmpty - determine the class of an error
func IsErrEmpty(e error) bool { var x EmptyError; return errors.As(e, &x) }

// IsErrExists - determine the class of an error
func IsErrExists(e error) bool { var x ExistsError; return errors.As(e, &x) }

// IsErrInvalid - determine the class of an error
func IsErrInvalid(e error) bool { var x InvalidError; return errors.As(e, &x) }

// IsErrNotFound - determine the class of an error
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }

// IsErrProcess - determine the class of an error
func IsErrProcess(e error) bool { var x ProcessError; return errors.As(e, &x) }
