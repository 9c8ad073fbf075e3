package tonesdk

import (
	"context"

	"go.uber.org/zap"
)

// ──────────────────────────────────────────────
// Fallback Advisor — remote first, local rules on any failure
// ──────────────────────────────────────────────

// FallbackAdvisor tries the remote advisor and silently degrades to the
// local rule engine when the remote call fails. Callers always get a
// usable response and never a transport error.
type FallbackAdvisor struct {
	remote Advisor
	local  *LocalAdvisor
	logger *zap.Logger
}

// NewFallbackAdvisor wraps remote with local fallback. A nil remote means
// every call goes straight to the local rules. A nil logger is replaced
// with a nop logger.
func NewFallbackAdvisor(remote Advisor, logger *zap.Logger) *FallbackAdvisor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FallbackAdvisor{
		remote: remote,
		local:  NewLocalAdvisor(),
		logger: logger,
	}
}

var _ Advisor = (*FallbackAdvisor)(nil)

// TransformText delegates to the remote transform, falling back to the
// local tables on error.
func (f *FallbackAdvisor) TransformText(ctx context.Context, req TransformRequest) (*TransformResponse, error) {
	if f.remote != nil {
		resp, err := f.remote.TransformText(ctx, req)
		if err == nil {
			return resp, nil
		}
		f.logger.Warn("remote transform failed, using local rules",
			zap.String("room_id", req.RoomID), zap.Error(err))
	}
	return f.local.TransformText(ctx, req)
}

// CheckEmotionGuard delegates to the remote guard, falling back to the
// local detector on error.
func (f *FallbackAdvisor) CheckEmotionGuard(ctx context.Context, req GuardRequest) (*GuardResponse, error) {
	if f.remote != nil {
		resp, err := f.remote.CheckEmotionGuard(ctx, req)
		if err == nil {
			return resp, nil
		}
		f.logger.Warn("remote emotion guard failed, using local rules", zap.Error(err))
	}
	return f.local.CheckEmotionGuard(ctx, req)
}

// SuggestReactions delegates to the remote advisor, falling back to the
// local reaction rules on error.
func (f *FallbackAdvisor) SuggestReactions(ctx context.Context, req ReactionRequest) (*ReactionResponse, error) {
	if f.remote != nil {
		resp, err := f.remote.SuggestReactions(ctx, req)
		if err == nil {
			return resp, nil
		}
		f.logger.Warn("remote reaction suggest failed, using local rules", zap.Error(err))
	}
	return f.local.SuggestReactions(ctx, req)
}
