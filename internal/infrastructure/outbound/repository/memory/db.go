package memory

import (
	"context"
	"errors"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	model "studentoffice-service/internal/domain/models"
	ports "studentoffice-service/internal/domain/ports/output"
	post_repository "studentoffice-service/internal/domain/ports/output/post"
	studentoffice_repository "studentoffice-service/internal/domain/ports/output/studentoffice"
	user_repository "studentoffice-service/internal/domain/ports/output/user"
	vote_repository "studentoffice-service/internal/domain/ports/output/vote"
)

var ErrTxDone = errors.New("transaction already finished")

type voteKey struct {
	userID int64
	postID int64
}

type state struct {
	posts     map[int64]*model.Post
	votes     map[voteKey]int
	users     map[int64]*model.User
	offices   map[int64]*model.StudentOffice
	menuItems map[int64]*model.MenuItem

	seq *sequences
}

// sequences hand out identities outside of any snapshot, so a transaction and
// the shared data never allocate the same id. Rolled back ids are not reused.
type sequences struct {
	post     atomic.Int64
	user     atomic.Int64
	office   atomic.Int64
	menuItem atomic.Int64
}

func newState() *state {
	return &state{
		posts:          make(map[int64]*model.Post),
		votes:          make(map[voteKey]int),
		users:          make(map[int64]*model.User),
		offices:        make(map[int64]*model.StudentOffice),
		menuItems: make(map[int64]*model.MenuItem),
		seq:       &sequences{},
	}
}

func (s *state) clone() *state {
	c := &state{
		posts:     make(map[int64]*model.Post, len(s.posts)),
		votes:     make(map[voteKey]int, len(s.votes)),
		users:     make(map[int64]*model.User, len(s.users)),
		offices:   make(map[int64]*model.StudentOffice, len(s.offices)),
		menuItems: make(map[int64]*model.MenuItem, len(s.menuItems)),
		seq:       s.seq,
	}
	for id, post := range s.posts {
		c.posts[id] = copyPost(post)
	}
	for key, option := range s.votes {
		c.votes[key] = option
	}
	for id, user := range s.users {
		u := *user
		c.users[id] = &u
	}
	for id, office := range s.offices {
		o := *office
		c.offices[id] = &o
	}
	for id, item := range s.menuItems {
		i := *item
		c.menuItems[id] = &i
	}
	return c
}

// mergeChanges applies to dst what changed between base and next: rows added
// or modified in next are written, rows dropped from base are deleted. Rows
// nobody touched in next keep whatever dst holds now.
func mergeChanges[K comparable, V any](dst, base, next map[K]V) {
	for key, value := range next {
		if old, ok := base[key]; ok && reflect.DeepEqual(old, value) {
			continue
		}
		dst[key] = value
	}
	for key := range base {
		if _, ok := next[key]; !ok {
			delete(dst, key)
		}
	}
}

func (s *state) apply(base, next *state) {
	mergeChanges(s.posts, base.posts, next.posts)
	mergeChanges(s.votes, base.votes, next.votes)
	mergeChanges(s.users, base.users, next.users)
	mergeChanges(s.offices, base.offices, next.offices)
	mergeChanges(s.menuItems, base.menuItems, next.menuItems)
}

func copyPost(post *model.Post) *model.Post {
	p := *post
	if post.PollOptions != nil {
		p.PollOptions = slices.Clone(post.PollOptions)
	}
	return &p
}

// DB is an in-process stand-in for the relational store. Repositories built
// from the same DB share data; transactions work on a snapshot that replaces
// the shared data on commit by applying only what the transaction changed.
type DB struct {
	mu    sync.RWMutex
	state *state
	log   ports.Logger
	now   func() time.Time
}

func NewDB(log ports.Logger) *DB {
	return &DB{state: newState(), log: log, now: time.Now}
}

// WithClock replaces the time source used for creation and update stamps.
func (d *DB) WithClock(now func() time.Time) *DB {
	d.now = now
	return d
}

func (d *DB) PostRepository() post_repository.Repository {
	return &PostRepository{db: d}
}

func (d *DB) VoteRepository() vote_repository.Repository {
	return &VoteRepository{db: d}
}

func (d *DB) UserRepository() user_repository.Repository {
	return &UserRepository{db: d}
}

func (d *DB) StudentOfficeRepository() studentoffice_repository.Repository {
	return &StudentOfficeRepository{db: d}
}

func (d *DB) MenuItemRepository() *MenuItemRepository {
	return &MenuItemRepository{db: d}
}

type UnitOfWork struct {
	db *DB
}

func NewUnitOfWork(db *DB) ports.UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Begin(ctx context.Context) (ports.Transaction, error) {
	u.db.mu.RLock()
	base := u.db.state.clone()
	u.db.mu.RUnlock()

	return &Transaction{
		parent: u.db,
		base:   base,
		db:     &DB{state: base.clone(), log: u.db.log, now: u.db.now},
	}, nil
}

type Transaction struct {
	mu     sync.Mutex
	parent *DB
	base   *state
	db     *DB
	done   bool
}

func (t *Transaction) PostRepository() post_repository.Repository {
	return t.db.PostRepository()
}

func (t *Transaction) VoteRepository() vote_repository.Repository {
	return t.db.VoteRepository()
}

func (t *Transaction) UserRepository() user_repository.Repository {
	return t.db.UserRepository()
}

func (t *Transaction) StudentOfficeRepository() studentoffice_repository.Repository {
	return t.db.StudentOfficeRepository()
}

func (t *Transaction) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.done {
		return ErrTxDone
	}
	t.done = true

	t.db.mu.RLock()
	committed := t.db.state
	t.db.mu.RUnlock()

	t.parent.mu.Lock()
	t.parent.state.apply(t.base, committed)
	t.parent.mu.Unlock()
	return nil
}

func (t *Transaction) Rollback(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.done = true
	return nil
}
