package log

// discard drops every entry. It is the default Logger of each
// component, so output only appears once a caller hands one in.
type discard struct{}

var _ Logger = discard{}

func (discard) Debugf(string, ...interface{}) {}
func (discard) Infof(string, ...interface{})  {}
func (discard) Warnf(string, ...interface{})  {}
func (discard) Errorf(string, ...interface{}) {}

// WithFields drops the fields too; the same discard is returned.
func (d discard) WithFields(Fields) Logger { return d }

// Fatal does not exit the process.
func (discard) Fatal(string) {}

// NewNullLogger returns a Logger that discards everything, including
// Fatal.
func NewNullLogger() Logger {
	return discard{}
}
