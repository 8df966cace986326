package seed

import (
	"context"
	"errors"

	"alcyxob/fitness-seeder/internal/domain"
)

var errInsertRefused = errors.New("insert refused")

// memGateway is an in-memory repository.Gateway for exercising the seeder
// without a database. It records every inserted document and counts the
// transaction calls so tests can assert checkpoint cadence.
type memGateway struct {
	docs      map[string][]domain.Document
	flushes   int
	commits   int
	rollbacks int
	closed    bool

	// failCollection, when set, refuses inserts into that collection.
	failCollection string
}

func newMemGateway() *memGateway {
	return &memGateway{docs: make(map[string][]domain.Document)}
}

func (g *memGateway) Insert(_ context.Context, doc domain.Document) error {
	if g.failCollection != "" && doc.Collection() == g.failCollection {
		return errInsertRefused
	}
	doc.EnsureID()
	g.docs[doc.Collection()] = append(g.docs[doc.Collection()], doc)
	return nil
}

func (g *memGateway) Flush(_ context.Context) error {
	g.flushes++
	return nil
}

func (g *memGateway) Commit(_ context.Context) error {
	g.commits++
	return nil
}

func (g *memGateway) Rollback(_ context.Context) error {
	g.rollbacks++
	return nil
}

func (g *memGateway) Close(_ context.Context) {
	g.closed = true
}

func (g *memGateway) sessions() []*domain.Session {
	var out []*domain.Session
	for _, doc := range g.docs[domain.SessionCollection] {
		out = append(out, doc.(*domain.Session))
	}
	return out
}

func (g *memGateway) sets() []*domain.SetRecord {
	var out []*domain.SetRecord
	for _, doc := range g.docs[domain.SetCollection] {
		out = append(out, doc.(*domain.SetRecord))
	}
	return out
}

func (g *memGateway) users() []*domain.User {
	var out []*domain.User
	for _, doc := range g.docs[domain.UserCollection] {
		out = append(out, doc.(*domain.User))
	}
	return out
}

func (g *memGateway) assignments() []*domain.Assignment {
	var out []*domain.Assignment
	for _, doc := range g.docs[domain.AssignmentCollection] {
		out = append(out, doc.(*domain.Assignment))
	}
	return out
}

// memSeedRunRepo records run markers in memory.
type memSeedRunRepo struct {
	created   []*domain.SeedRun
	finalized []*domain.SeedRun
}

func (r *memSeedRunRepo) Create(_ context.Context, run *domain.SeedRun) error {
	run.EnsureID()
	r.created = append(r.created, run)
	return nil
}

func (r *memSeedRunRepo) Finalize(_ context.Context, run *domain.SeedRun) error {
	r.finalized = append(r.finalized, run)
	return nil
}
