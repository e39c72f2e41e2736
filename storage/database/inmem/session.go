package inmemdb

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/zulkitech/traindesk/core/session"
)

type sessionRepository struct {
	db *DB
}

var _ session.Repository = (*sessionRepository)(nil)

func NewSessionRepository(db *DB) *sessionRepository {
	return &sessionRepository{db: db}
}

func (repo sessionRepository) CreateSession(_ context.Context, ses session.Session) (session.Session, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	ses.ID = uuid.New().String()
	repo.db.sessions = append(repo.db.sessions, ses)
	return ses, nil
}

func (repo sessionRepository) QueryAllSessions(_ context.Context) ([]session.Session, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	sessions := slices.Clone(repo.db.sessions)
	sortSessions(sessions)
	return sessions, nil
}

func (repo sessionRepository) GetSessionByID(_ context.Context, id string) (session.Session, error) {
	repo.db.mu.RLock()
	defer repo.db.mu.RUnlock()

	for _, ses := range repo.db.sessions {
		if ses.ID == id {
			return ses, nil
		}
	}
	return session.Session{}, session.ErrNotFound
}

func (repo sessionRepository) UpdateSession(_ context.Context, ses session.Session) (session.Session, error) {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	for i, existing := range repo.db.sessions {
		if existing.ID == ses.ID {
			repo.db.sessions[i] = ses
			return ses, nil
		}
	}
	return session.Session{}, session.ErrNotFound
}

func (repo sessionRepository) DeleteSessionsByID(_ context.Context, ids ...string) error {
	repo.db.mu.Lock()
	defer repo.db.mu.Unlock()

	repo.db.sessions = slices.DeleteFunc(repo.db.sessions, func(ses session.Session) bool {
		return slices.Contains(ids, ses.ID)
	})
	return nil
}
