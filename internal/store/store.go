package store

import (
	"errors"
	"sync"

	"github.com/sprintsim/backend/internal/models"
)

var (
	ErrNotFound = errors.New("not found")
	ErrNoEpic   = errors.New("no epic created yet")
)

// Store is the single in-memory workspace: one roster, one epic, one plan,
// and any number of simulation sessions. All methods copy values in and out
// so callers never share slices with the store.
type Store struct {
	mu       sync.RWMutex
	team     []models.TeamMember
	epic     *models.Epic
	sprints  []models.Sprint
	sessions map[string]*models.Session
}

func New() *Store {
	return &Store{sessions: map[string]*models.Session{}}
}

func (s *Store) ListTeam() []models.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyTeam(s.team)
}

func (s *Store) AddMember(member models.TeamMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.team = append(s.team, copyMember(member))
}

func (s *Store) UpdateMember(member models.TeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.team {
		if m.ID == member.ID {
			s.team[i] = copyMember(member)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) RemoveMember(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, m := range s.team {
		if m.ID == id {
			s.team = append(s.team[:i], s.team[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *Store) SetEpic(epic models.Epic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e := epic
	e.Stories = append([]models.Story(nil), epic.Stories...)
	s.epic = &e
	// A new epic invalidates any earlier plan.
	s.sprints = nil
}

func (s *Store) GetEpic() (models.Epic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.epic == nil {
		return models.Epic{}, ErrNoEpic
	}
	e := *s.epic
	e.Stories = append([]models.Story(nil), s.epic.Stories...)
	return e, nil
}

func (s *Store) SetSprints(sprints []models.Sprint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sprints = copySprints(sprints)
}

func (s *Store) ListSprints() []models.Sprint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copySprints(s.sprints)
}

func (s *Store) GetSprint(id int) (models.Sprint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sp := range s.sprints {
		if sp.ID == id {
			out := sp
			out.Stories = append([]models.Story(nil), sp.Stories...)
			return out, nil
		}
	}
	return models.Sprint{}, ErrNotFound
}

func (s *Store) PutSession(session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := copySession(session)
	s.sessions[session.ID] = &copied
}

func (s *Store) GetSession(id string) (models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return models.Session{}, ErrNotFound
	}
	return copySession(*session), nil
}

// WithSession runs fn over the stored session under the write lock. This is
// what keeps day advancement strictly sequential: no two mutations of the
// same session can interleave.
func (s *Store) WithSession(id string, fn func(session *models.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return ErrNotFound
	}
	return fn(session)
}

func copyTeam(team []models.TeamMember) []models.TeamMember {
	out := make([]models.TeamMember, 0, len(team))
	for _, m := range team {
		out = append(out, copyMember(m))
	}
	return out
}

func copyMember(m models.TeamMember) models.TeamMember {
	skills := make(map[models.SkillArea]*models.SkillLevel, len(m.Skills))
	for area, level := range m.Skills {
		if level == nil {
			skills[area] = nil
			continue
		}
		l := *level
		skills[area] = &l
	}
	m.Skills = skills
	return m
}

func copySprints(sprints []models.Sprint) []models.Sprint {
	out := make([]models.Sprint, 0, len(sprints))
	for _, sp := range sprints {
		sp.Stories = append([]models.Story(nil), sp.Stories...)
		out = append(out, sp)
	}
	return out
}

func copySession(session models.Session) models.Session {
	session.Sprint.Stories = append([]models.Story(nil), session.Sprint.Stories...)
	session.Stories = append([]models.Story(nil), session.Stories...)
	days := make([]models.DailyState, 0, len(session.Days))
	for _, d := range session.Days {
		d.Disruptions = append([]models.DailyDisruption(nil), d.Disruptions...)
		d.Log = append([]string(nil), d.Log...)
		days = append(days, d)
	}
	session.Days = days
	return session
}
