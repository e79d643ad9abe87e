package interfaces

import (
	"context"
	"member_registry/internal/domain/entities"
)

// ISMSGateway abstracts external SMS providers (e.g. SMSLogin, DLT bulk gateways).
//
// Send is total: transport failures and provider rejections are folded into the
// returned SMSResult, never raised, so callers can persist the outcome without
// branching on error shape. The gateway normalizes the destination itself, so
// passing an already-normalized number is harmless.
type ISMSGateway interface {
	Send(ctx context.Context, to, message string) entities.SMSResult
}
