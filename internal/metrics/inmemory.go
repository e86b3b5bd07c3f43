package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	Signups         uint64
	Logins          uint64
	LoginsRejected  uint64
	ProfilesUpdated uint64
	SkillsCreated   uint64
	SkillsUpdated   uint64
	SkillsDeleted   uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	signups         uint64
	logins          uint64
	loginsRejected  uint64
	profilesUpdated uint64
	skillsCreated   uint64
	skillsUpdated   uint64
	skillsDeleted   uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		Signups:         atomic.LoadUint64(&m.signups),
		Logins:          atomic.LoadUint64(&m.logins),
		LoginsRejected:  atomic.LoadUint64(&m.loginsRejected),
		ProfilesUpdated: atomic.LoadUint64(&m.profilesUpdated),
		SkillsCreated:   atomic.LoadUint64(&m.skillsCreated),
		SkillsUpdated:   atomic.LoadUint64(&m.skillsUpdated),
		SkillsDeleted:   atomic.LoadUint64(&m.skillsDeleted),
	}
}

// IncSignup increments the signup counter.
func (m *InMemoryRecorder) IncSignup() {
	atomic.AddUint64(&m.signups, 1)
}

// IncLogin increments the successful login counter.
func (m *InMemoryRecorder) IncLogin() {
	atomic.AddUint64(&m.logins, 1)
}

// IncLoginRejected increments the rejected login counter.
func (m *InMemoryRecorder) IncLoginRejected() {
	atomic.AddUint64(&m.loginsRejected, 1)
}

// IncProfileUpdated increments the profile update counter.
func (m *InMemoryRecorder) IncProfileUpdated() {
	atomic.AddUint64(&m.profilesUpdated, 1)
}

// IncSkillCreated increments the skill created counter.
func (m *InMemoryRecorder) IncSkillCreated() {
	atomic.AddUint64(&m.skillsCreated, 1)
}

// IncSkillUpdated increments the skill updated counter.
func (m *InMemoryRecorder) IncSkillUpdated() {
	atomic.AddUint64(&m.skillsUpdated, 1)
}

// IncSkillDeleted increments the skill deleted counter.
func (m *InMemoryRecorder) IncSkillDeleted() {
	atomic.AddUint64(&m.skillsDeleted, 1)
}
