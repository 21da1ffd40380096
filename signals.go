package grist

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for grist events.
var (
	SignalPathResolved   = capitan.NewSignal("grist.path.resolved", "Implementation path selected for an operation family")
	SignalEntropyFailure = capitan.NewSignal("grist.entropy.failure", "Entropy source read failed")
)

// Keys for typed event data.
var (
	KeyFamily = capitan.NewStringKey("family")
	KeyPath   = capitan.NewStringKey("path")
	KeyOp     = capitan.NewStringKey("op")
	KeyError  = capitan.NewErrorKey("error")
)

// emitPathResolved emits an event when a family resolves its path at init.
func emitPathResolved(ctx context.Context, family Family, path Path) {
	capitan.Emit(ctx, SignalPathResolved,
		KeyFamily.Field(string(family)),
		KeyPath.Field(string(path)),
	)
}

// emitEntropyFailure emits an event when the entropy source fails.
func emitEntropyFailure(ctx context.Context, op string, err error) {
	capitan.Error(ctx, SignalEntropyFailure,
		KeyOp.Field(op),
		KeyError.Field(err),
	)
}
