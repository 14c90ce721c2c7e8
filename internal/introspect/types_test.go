package introspect_test

import (
	"errors"
	"time"
)

type immutableKey struct {
	accountID  *int
	createTime *time.Time
}

func newImmutableKey(accountID *int, createTime *time.Time) *immutableKey {
	return &immutableKey{accountID: accountID, createTime: createTime}
}

func newImmutableKeyFromTime(createTime *time.Time, accountID *int) *immutableKey {
	return &immutableKey{accountID: accountID, createTime: createTime}
}

func (k *immutableKey) AccountID() *int        { return k.accountID }
func (k *immutableKey) CreateTime() *time.Time { return k.createTime }

type semiMutableKey struct {
	AccountID  *int
	createTime *time.Time
}

func newSemiMutableKey(createTime *time.Time) semiMutableKey {
	return semiMutableKey{createTime: createTime}
}

func (k *semiMutableKey) CreateTime() *time.Time { return k.createTime }

type counter struct {
	Name string
	hits int
}

func (c *counter) Hits() int     { return c.hits }
func (c *counter) SetHits(n int) { c.hits = n }
func (c counter) Label() string  { return c.Name + "!" }
func (c *counter) Reset() error  { c.hits = 0; return nil }

type embedded struct {
	counter
	Extra string
}

type ambiguous struct {
	AccountID int
}

func (a *ambiguous) Accountid() int { return a.AccountID }

type document struct {
	Title string
}

var errEmptyTitle = errors.New("empty title")

func newDocument(title string) (*document, error) {
	if title == "" {
		return nil, errEmptyTitle
	}

	return &document{Title: title}, nil
}

type device struct {
	settings string
	ready    bool
}

func newDevice(settings string) *device {
	return &device{settings: settings}
}

func (d *device) Settings() string { return d.settings }
func (d *device) Setup() bool      { return d.ready }
func (d *device) SetReady(ok bool) { d.ready = ok }
