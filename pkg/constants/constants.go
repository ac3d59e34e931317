package constants

import (
	"github.com/go-playground/validator/v10"
)

type ContextKey string

const (
	PoolKey ContextKey = "pool"
	TxKey   ContextKey = "tx"
)

// Validate is the shared validator instance used by DTO and field checks.
var Validate = validator.New()
