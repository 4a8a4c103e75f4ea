// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package bddcore

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Error returns the text of every internal error recorded against d by
// seterror, most recent first, or "" if none. No Diagram operation in this
// package records an error; an out-of-range Pointer panics instead.
func (d *Diagram) Error() string {
	if d.err == nil {
		return ""
	}
	return d.err.Error()
}

// Errored reports whether any internal error has been recorded against d.
func (d *Diagram) Errored() bool {
	return d.err != nil
}

// seterror records an internal error against d, chaining it onto any error
// already recorded rather than discarding it. Only the first recorded error
// is logged, at debug level.
func (d *Diagram) seterror(format string, a ...interface{}) {
	next := fmt.Errorf(format, a...)
	if d.err != nil {
		d.err = errors.Wrap(d.err, next.Error())
		return
	}
	d.err = next
	logrus.WithField("component", "diagram").Debug(d.err)
}
