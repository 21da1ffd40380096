package grist

import (
	"context"
	"errors"
	"testing"
)

func TestEmitPathResolved(_ *testing.T) {
	// Should not panic
	emitPathResolved(context.Background(), FamilyCodec, PathNative)
}

func TestEmitEntropyFailure(_ *testing.T) {
	emitEntropyFailure(context.Background(), "uuidv7", errors.New("test error"))
}
