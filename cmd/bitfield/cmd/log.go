package cmd

import (
	"go.uber.org/zap"

	"github.com/wirekit/bitcursor/shared"
)

// zapAdapter bridges the zap sugared logger to shared.Logger, so the codec
// can log through the CLI's logger.
type zapAdapter struct {
	l *zap.SugaredLogger
}

var _ shared.Logger = (*zapAdapter)(nil)

func (a zapAdapter) Info(format string, args ...any)    { a.l.Infof(format, args...) }
func (a zapAdapter) Debug(format string, args ...any)   { a.l.Debugf(format, args...) }
func (a zapAdapter) Warning(format string, args ...any) { a.l.Warnf(format, args...) }
func (a zapAdapter) Error(format string, args ...any)   { a.l.Errorf(format, args...) }
