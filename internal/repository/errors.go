// Package repository contains data access logic over the shared MySQL store.
// Sentinel errors let handlers map storage failures onto HTTP responses
// without string matching at the call site.
package repository

import "errors"

// ErrEmailExists is returned when registration hits the unique email key.
// Handlers translate it into a client error; the original row is untouched.
var ErrEmailExists = errors.New("email already exists")
