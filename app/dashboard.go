package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/bobinette/notenet"
	"github.com/bobinette/notenet/clients/notes"
	"github.com/bobinette/notenet/errors"
)

type NotesClient interface {
	List(ctx context.Context) (notenet.Notes, error)
	Create(ctx context.Context, title, content string) (notenet.Note, error)
	Update(ctx context.Context, id, title, content string) (notenet.Note, error)
	Delete(ctx context.Context, id string) error
}

type TenantClient interface {
	Upgrade(ctx context.Context, slug string) (notenet.Tenant, error)
}

// UpgradePrompt describes the banner offered once the tenant hit the limit
// of the free plan.
type UpgradePrompt struct {
	Show       bool
	CanUpgrade bool
	Message    string
}

// Dashboard holds the notes of the tenant as last seen by the user. The list
// is only changed after the API accepted the change.
type Dashboard struct {
	session Session
	notes   NotesClient
	tenants TenantClient

	mu           sync.Locker
	list         notenet.Notes
	editing      *notenet.Note
	banner       string
	limitReached bool
	loading      bool
}

func NewDashboard(s Session, nc NotesClient, tc TenantClient) *Dashboard {
	return &Dashboard{
		session: s,
		notes:   nc,
		tenants: tc,

		mu:      &sync.Mutex{},
		list:    notenet.Notes{},
		loading: true,
	}
}

// Guard returns the login route once the session is known to be signed out,
// and an empty string when the dashboard can be shown.
func (d *Dashboard) Guard() string {
	if !d.session.IsAuthenticated() && !d.session.Loading() {
		return RouteLogin
	}
	return ""
}

// Load fetches the notes. It does nothing until the session is
// authenticated.
func (d *Dashboard) Load(ctx context.Context) error {
	if !d.session.IsAuthenticated() {
		return nil
	}

	list, err := d.notes.List(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()

	d.loading = false
	if err != nil {
		d.banner = errors.MessageOf(errors.Fallback(err, "Failed to load notes"))
		return err
	}

	d.list = list
	return nil
}

// Edit switches the form to the edition of note.
func (d *Dashboard) Edit(note notenet.Note) {
	d.mu.Lock()
	defer d.mu.Unlock()

	n := note
	d.editing = &n
}

// Cancel leaves edit mode.
func (d *Dashboard) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.editing = nil
}

// Submit creates a note, or updates the note being edited.
func (d *Dashboard) Submit(ctx context.Context, title, content string) (notenet.Note, error) {
	d.mu.Lock()
	d.banner = ""
	editing := d.editing
	d.mu.Unlock()

	if title == "" || content == "" {
		return notenet.Note{}, d.fail(errors.New("Please enter both title and content", errors.BadRequest()))
	}

	if editing != nil {
		note, err := d.notes.Update(ctx, editing.ID, title, content)
		if err != nil {
			return notenet.Note{}, d.fail(errors.Fallback(err, "Failed to save note"))
		}

		d.mu.Lock()
		d.list = d.list.Replace(note)
		d.editing = nil
		d.mu.Unlock()
		return note, nil
	}

	note, err := d.notes.Create(ctx, title, content)
	if err != nil {
		if notes.IsLimitReached(err) {
			d.mu.Lock()
			d.limitReached = true
			d.mu.Unlock()
		}
		return notenet.Note{}, d.fail(errors.Fallback(err, "Failed to save note"))
	}

	d.mu.Lock()
	d.list = d.list.Append(note)
	d.mu.Unlock()
	return note, nil
}

func (d *Dashboard) Delete(ctx context.Context, id string) error {
	if err := d.notes.Delete(ctx, id); err != nil {
		return d.fail(errors.Fallback(err, "Failed to delete note"))
	}

	d.mu.Lock()
	d.list = d.list.Remove(id)
	d.mu.Unlock()
	return nil
}

// Upgrade moves the tenant of the user to the pro plan and updates the
// session with the new plan.
func (d *Dashboard) Upgrade(ctx context.Context) error {
	user := d.session.User()
	if user == nil {
		return d.fail(errors.New("Failed to upgrade subscription", errors.Unauthorized()))
	}

	tenant, err := d.tenants.Upgrade(ctx, user.Tenant.Slug)
	if err != nil {
		return d.fail(errors.Fallback(err, "Failed to upgrade subscription"))
	}

	d.session.SetPlan(tenant.SubscriptionPlan)

	d.mu.Lock()
	d.limitReached = false
	d.banner = ""
	d.mu.Unlock()
	return nil
}

func (d *Dashboard) Notes() notenet.Notes {
	d.mu.Lock()
	defer d.mu.Unlock()

	list := make(notenet.Notes, len(d.list))
	copy(list, d.list)
	return list
}

// Editing returns the note being edited, nil in creation mode.
func (d *Dashboard) Editing() *notenet.Note {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.editing == nil {
		return nil
	}
	n := *d.editing
	return &n
}

// Banner is the inline error text.
func (d *Dashboard) Banner() string {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.banner
}

func (d *Dashboard) LimitReached() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.limitReached
}

func (d *Dashboard) Loading() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.loading
}

func (d *Dashboard) UpgradePrompt() UpgradePrompt {
	user := d.session.User()

	d.mu.Lock()
	limitReached := d.limitReached
	d.mu.Unlock()

	if !limitReached || user == nil || user.Tenant.SubscriptionPlan != notenet.PlanFree {
		return UpgradePrompt{}
	}

	if d.session.IsAdmin() {
		return UpgradePrompt{
			Show:       true,
			CanUpgrade: true,
			Message:    "Your tenant reached the note limit of the Free Plan. Upgrade to Pro for unlimited notes.",
		}
	}
	return UpgradePrompt{
		Show:    true,
		Message: "Please contact your administrator to upgrade to the Pro Plan.",
	}
}

// Header describes who is signed in, e.g. "admin@acme.test (admin) - Acme (Free Plan)".
func (d *Dashboard) Header() string {
	user := d.session.User()
	if user == nil {
		return ""
	}
	return fmt.Sprintf("%s (%s) - %s (%s)", user.Email, user.Role, user.Tenant.Name, user.Tenant.SubscriptionPlan.Label())
}

func (d *Dashboard) fail(err error) error {
	d.mu.Lock()
	d.banner = errors.MessageOf(err)
	d.mu.Unlock()
	return err
}
