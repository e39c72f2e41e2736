// Package inmemdb provides in-memory repositories with the same semantics as
// the Postgres ones. Meant for tests and local tinkering.
package inmemdb

import (
	"sort"
	"sync"

	"github.com/zulkitech/traindesk/core/certification"
	"github.com/zulkitech/traindesk/core/course"
	"github.com/zulkitech/traindesk/core/payment"
	"github.com/zulkitech/traindesk/core/session"
	"github.com/zulkitech/traindesk/core/student"
)

// DB holds every entity in insertion order behind one lock. Repositories share
// it so joined lookups (certification holder, payment payer) stay consistent.
type DB struct {
	mu             sync.RWMutex
	courses        []course.Course
	sessions       []session.Session
	students       []student.Student
	certifications []certification.Certification
	payments       []payment.Payment
}

func NewDB() *DB {
	return &DB{}
}

func (db *DB) studentName(id string) (string, bool) {
	for _, stu := range db.students {
		if stu.ID == id {
			return stu.Name, true
		}
	}
	return "", false
}

func sortSessions(sessions []session.Session) {
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date.Before(sessions[j].Date)
	})
}
