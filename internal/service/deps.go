package service

import (
	"time"

	"github.com/google/uuid"
)

// Clock supplies the current instant. Injected so tests can pin time.
type Clock interface {
	Now() time.Time
}

// IdGenerator supplies unique opaque identifiers for posts and comments.
type IdGenerator interface {
	NewId() string
}

// Confirmer asks the user a blocking yes/no question. Destructive
// operations go through it before touching storage.
type Confirmer interface {
	Confirm(prompt string) bool
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

type UuidGenerator struct{}

func (UuidGenerator) NewId() string { return uuid.NewString() }
