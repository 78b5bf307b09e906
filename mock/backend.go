package mock

import (
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/errors"
)

// DefaultPassword is the password of every seeded and invited account.
const DefaultPassword = "password"

// FreePlanLimit is the number of notes a tenant on the free plan can hold.
const FreePlanLimit = 3

const limitReachedMessage = "Free plan limit reached. Upgrade to Pro for unlimited notes."

type account struct {
	id       string
	email    string
	role     notenet.Role
	tenant   string
	password []byte
}

// Backend is an in-memory version of the notes API state: tenants, their
// users and their notes.
type Backend struct {
	mu sync.Locker

	tenants  map[string]*notenet.Tenant
	accounts []*account
	notes    map[string]notenet.Notes

	freeLimit int
}

func NewBackend() *Backend {
	return &Backend{
		mu:        &sync.Mutex{},
		tenants:   make(map[string]*notenet.Tenant),
		notes:     make(map[string]notenet.Notes),
		freeLimit: FreePlanLimit,
	}
}

var (
	hashOnce sync.Once
	hashed   []byte
	hashErr  error
)

func defaultHash() ([]byte, error) {
	hashOnce.Do(func() {
		hashed, hashErr = bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	})
	return hashed, hashErr
}

// Seeded returns a backend holding the acme and globex tenants, both on the
// free plan, each with an admin and a member account.
func Seeded() (*Backend, error) {
	b := NewBackend()
	for _, t := range []notenet.Tenant{
		{Slug: "acme", Name: "Acme", SubscriptionPlan: notenet.PlanFree},
		{Slug: "globex", Name: "Globex", SubscriptionPlan: notenet.PlanFree},
	} {
		b.AddTenant(t)
		if _, err := b.AddUser(t.Slug, "admin@"+t.Slug+".test", notenet.RoleAdmin); err != nil {
			return nil, err
		}
		if _, err := b.AddUser(t.Slug, "user@"+t.Slug+".test", notenet.RoleMember); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Backend) AddTenant(t notenet.Tenant) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tenant := t
	b.tenants[t.Slug] = &tenant
}

// AddUser creates an account with the default password.
func (b *Backend) AddUser(slug, email string, role notenet.Role) (notenet.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.addUser(slug, email, role)
}

func (b *Backend) addUser(slug, email string, role notenet.Role) (notenet.User, error) {
	if _, ok := b.tenants[slug]; !ok {
		return notenet.User{}, errors.New("Tenant not found", errors.NotFound())
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if b.byEmail(email) != nil {
		return notenet.User{}, errors.New("User already exists", errors.WithCode(http.StatusConflict))
	}

	password, err := defaultHash()
	if err != nil {
		return notenet.User{}, err
	}

	acc := &account{
		id:       uuid.NewString(),
		email:    email,
		role:     role,
		tenant:   slug,
		password: password,
	}
	b.accounts = append(b.accounts, acc)
	return b.user(acc), nil
}

// Authenticate checks the credentials of a user.
func (b *Backend) Authenticate(email, password string) (notenet.User, error) {
	if email == "" || password == "" {
		return notenet.User{}, errors.New("Email and password are required", errors.BadRequest())
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	acc := b.byEmail(strings.ToLower(strings.TrimSpace(email)))
	if acc == nil {
		return notenet.User{}, errors.New("Invalid credentials", errors.Unauthorized())
	}

	if err := bcrypt.CompareHashAndPassword(acc.password, []byte(password)); err != nil {
		return notenet.User{}, errors.New("Invalid credentials", errors.Unauthorized())
	}

	return b.user(acc), nil
}

func (b *Backend) User(id string) (notenet.User, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, acc := range b.accounts {
		if acc.id == id {
			return b.user(acc), nil
		}
	}
	return notenet.User{}, errors.New("User not found", errors.Unauthorized())
}

// Invite adds a user to the tenant of by. Only admins can invite.
func (b *Backend) Invite(by notenet.User, email string, role notenet.Role) (notenet.User, error) {
	if by.Role != notenet.RoleAdmin {
		return notenet.User{}, errors.New("Admin access required", errors.Forbidden())
	}
	if strings.TrimSpace(email) == "" {
		return notenet.User{}, errors.New("Email is required", errors.BadRequest())
	}
	if role == "" {
		role = notenet.RoleMember
	}
	if !role.Valid() {
		return notenet.User{}, errors.New("Role must be admin or member", errors.BadRequest())
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.addUser(by.Tenant.Slug, email, role)
}

// Upgrade moves the tenant to the pro plan. Only an admin of the tenant can
// upgrade it.
func (b *Backend) Upgrade(by notenet.User, slug string) (notenet.Tenant, error) {
	if by.Role != notenet.RoleAdmin {
		return notenet.Tenant{}, errors.New("Admin access required", errors.Forbidden())
	}
	if by.Tenant.Slug != slug {
		return notenet.Tenant{}, errors.New("You can only upgrade your own tenant", errors.Forbidden())
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tenant, ok := b.tenants[slug]
	if !ok {
		return notenet.Tenant{}, errors.New("Tenant not found", errors.NotFound())
	}
	tenant.SubscriptionPlan = notenet.PlanPro
	return *tenant, nil
}

func (b *Backend) Notes(slug string) notenet.Notes {
	b.mu.Lock()
	defer b.mu.Unlock()

	notes := make(notenet.Notes, len(b.notes[slug]))
	copy(notes, b.notes[slug])
	return notes
}

func (b *Backend) Note(slug, id string) (notenet.Note, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	note, ok := b.notes[slug].Find(id)
	if !ok {
		return notenet.Note{}, errors.New("Note not found", errors.NotFound())
	}
	return note, nil
}

func (b *Backend) CreateNote(slug, title, content string) (notenet.Note, error) {
	if err := validateNote(title, content); err != nil {
		return notenet.Note{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	tenant, ok := b.tenants[slug]
	if !ok {
		return notenet.Note{}, errors.New("Tenant not found", errors.NotFound())
	}

	if tenant.SubscriptionPlan != notenet.PlanPro && len(b.notes[slug]) >= b.freeLimit {
		return notenet.Note{}, errLimitReached
	}

	note := notenet.Note{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
	}
	b.notes[slug] = b.notes[slug].Append(note)
	return note, nil
}

func (b *Backend) UpdateNote(slug, id, title, content string) (notenet.Note, error) {
	if err := validateNote(title, content); err != nil {
		return notenet.Note{}, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.notes[slug].Find(id); !ok {
		return notenet.Note{}, errors.New("Note not found", errors.NotFound())
	}

	note := notenet.Note{ID: id, Title: title, Content: content}
	b.notes[slug] = b.notes[slug].Replace(note)
	return note, nil
}

func (b *Backend) DeleteNote(slug, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.notes[slug].Find(id); !ok {
		return errors.New("Note not found", errors.NotFound())
	}

	b.notes[slug] = b.notes[slug].Remove(id)
	return nil
}

func validateNote(title, content string) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return errors.New("Title and content are required", errors.BadRequest())
	}
	return nil
}

func (b *Backend) byEmail(email string) *account {
	for _, acc := range b.accounts {
		if acc.email == email {
			return acc
		}
	}
	return nil
}

func (b *Backend) user(acc *account) notenet.User {
	return notenet.User{
		ID:     acc.id,
		Email:  acc.email,
		Role:   acc.role,
		Tenant: *b.tenants[acc.tenant],
	}
}

type limitError struct {
	err errors.Error
}

func (e limitError) Error() string   { return e.err.Error() }
func (e limitError) Code() int       { return e.err.Code() }
func (e limitError) Message() string { return e.err.Message() }
func (e limitError) Cause() error    { return e.err.Cause() }

var errLimitReached error = limitError{err: errors.New(limitReachedMessage, errors.Forbidden()).(errors.Error)}

// IsLimitReached tells whether err was returned because the tenant hit the
// free plan limit.
func IsLimitReached(err error) bool {
	_, ok := err.(limitError)
	return ok
}
