package ir

import "errors"

var (
	ErrNoVars      = errors.New("node sets uninitialized")
	ErrVarNotFound = errors.New("reached end of node sets without finding specified set")
	ErrVarExists   = errors.New("variable already exists")
	ErrBadValue    = errors.New("bad value")
	ErrBadPath     = errors.New("bad path")
)
