package dice

import "go.uber.org/zap"

// Roller wraps a Source and logger so every draw is logged at debug level
// with its purpose, bound, and result.
type Roller struct {
	src    Source
	logger *zap.Logger
}

// NewLoggedRoller creates a Roller that draws from src and logs each draw to logger.
//
// Precondition: src and logger must be non-nil.
func NewLoggedRoller(src Source, logger *zap.Logger) *Roller {
	return &Roller{src: src, logger: logger}
}

// Intn draws from the wrapped source and logs the result; Roller itself satisfies Source.
func (r *Roller) Intn(n int) int {
	v := r.src.Intn(n)
	r.logger.Debug("random draw", zap.Int("bound", n), zap.Int("result", v))
	return v
}

// Chance is Chance(r, p) with the outcome logged under purpose.
// The underlying draw is not logged a second time.
func (r *Roller) Chance(purpose string, p float64) bool {
	ok := Chance(r.src, p)
	r.logger.Debug("chance roll",
		zap.String("purpose", purpose),
		zap.Float64("probability", p),
		zap.Bool("success", ok),
	)
	return ok
}

// Roll resolves a chance for purpose. When src is a *Roller the outcome is
// logged under purpose; any other Source behaves exactly like Chance.
func Roll(src Source, purpose string, p float64) bool {
	if r, ok := src.(*Roller); ok {
		return r.Chance(purpose, p)
	}
	return Chance(src, p)
}
