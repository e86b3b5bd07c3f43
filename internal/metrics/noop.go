package metrics

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncSignup is a no-op.
func (n *NoopRecorder) IncSignup() {}

// IncLogin is a no-op.
func (n *NoopRecorder) IncLogin() {}

// IncLoginRejected is a no-op.
func (n *NoopRecorder) IncLoginRejected() {}

// IncProfileUpdated is a no-op.
func (n *NoopRecorder) IncProfileUpdated() {}

// IncSkillCreated is a no-op.
func (n *NoopRecorder) IncSkillCreated() {}

// IncSkillUpdated is a no-op.
func (n *NoopRecorder) IncSkillUpdated() {}

// IncSkillDeleted is a no-op.
func (n *NoopRecorder) IncSkillDeleted() {}
