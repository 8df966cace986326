package mongo

import (
	"context"
	"fmt"

	"alcyxob/fitness-seeder/internal/domain"
	"alcyxob/fitness-seeder/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// mongoGateway implements repository.Gateway on top of a MongoDB client
// session. Documents are buffered per collection and written with
// InsertMany on Flush; Commit closes the current transaction segment and
// opens the next one, which is what makes checkpointed seeding possible.
//
// Transactions require a replica set. Against a standalone mongod the
// gateway can run with transactions disabled, in which case Commit is just
// a flush and Rollback only drops the unflushed buffers.
type mongoGateway struct {
	db   *mongo.Database
	sess mongo.Session // nil when transactions are disabled

	buffers map[string][]interface{}
	order   []string // collections in first-insert order, for flushing
	closed  bool
}

// NewGateway opens a gateway for one seeding run. The caller must Close it.
func NewGateway(ctx context.Context, client *mongo.Client, db *mongo.Database, transactions bool) (repository.Gateway, error) {
	g := &mongoGateway{
		db:      db,
		buffers: make(map[string][]interface{}),
	}

	if transactions {
		sess, err := client.StartSession()
		if err != nil {
			return nil, fmt.Errorf("starting mongo session: %w", err)
		}
		if err := sess.StartTransaction(); err != nil {
			sess.EndSession(ctx)
			return nil, fmt.Errorf("starting transaction: %w", err)
		}
		g.sess = sess
	}

	return g, nil
}

func (g *mongoGateway) Insert(_ context.Context, doc domain.Document) error {
	if g.closed {
		return repository.ErrClosed
	}
	doc.EnsureID()

	coll := doc.Collection()
	if _, ok := g.buffers[coll]; !ok {
		g.order = append(g.order, coll)
	}
	g.buffers[coll] = append(g.buffers[coll], doc)
	return nil
}

func (g *mongoGateway) Flush(ctx context.Context) error {
	if g.closed {
		return repository.ErrClosed
	}
	return g.inSession(ctx, func(sctx context.Context) error {
		for _, coll := range g.order {
			docs := g.buffers[coll]
			if len(docs) == 0 {
				continue
			}
			if _, err := g.db.Collection(coll).InsertMany(sctx, docs); err != nil {
				return fmt.Errorf("inserting into %s: %w", coll, err)
			}
			g.buffers[coll] = g.buffers[coll][:0]
		}
		return nil
	})
}

func (g *mongoGateway) Commit(ctx context.Context) error {
	if err := g.Flush(ctx); err != nil {
		return err
	}
	if g.sess == nil {
		return nil
	}
	if err := g.sess.CommitTransaction(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	// Open the next segment so subsequent inserts land in a fresh
	// transaction.
	if err := g.sess.StartTransaction(); err != nil {
		return fmt.Errorf("starting next transaction: %w", err)
	}
	return nil
}

func (g *mongoGateway) Rollback(ctx context.Context) error {
	for coll := range g.buffers {
		g.buffers[coll] = g.buffers[coll][:0]
	}
	if g.sess == nil || g.closed {
		return nil
	}
	return g.sess.AbortTransaction(ctx)
}

func (g *mongoGateway) Close(ctx context.Context) {
	if g.closed {
		return
	}
	g.closed = true
	if g.sess != nil {
		g.sess.EndSession(ctx)
	}
}

func (g *mongoGateway) inSession(ctx context.Context, fn func(context.Context) error) error {
	if g.sess == nil {
		return fn(ctx)
	}
	return mongo.WithSession(ctx, g.sess, func(sctx mongo.SessionContext) error {
		return fn(sctx)
	})
}
