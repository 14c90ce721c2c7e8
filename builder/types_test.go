package builder_test

import (
	"errors"
	"time"

	"object-builder/builder"
)

var createTime = time.Date(2015, 3, 4, 0, 0, 0, 0, time.UTC)

func ptr[V any](v V) *V { return &v }

// immutableFileKey is only settable through its constructor.
type immutableFileKey struct {
	accountID  *int
	createTime *time.Time
}

func newImmutableFileKey(accountID *int, createTime *time.Time) *immutableFileKey {
	return &immutableFileKey{accountID: accountID, createTime: createTime}
}

func (k *immutableFileKey) AccountID() *int        { return k.accountID }
func (k *immutableFileKey) CreateTime() *time.Time { return k.createTime }

// semiMutableFileKey takes createTime in its constructor; AccountID is a field.
type semiMutableFileKey struct {
	AccountID  *int
	createTime *time.Time
}

func newSemiMutableFileKey(createTime *time.Time) semiMutableFileKey {
	return semiMutableFileKey{createTime: createTime}
}

func (k *semiMutableFileKey) CreateTime() *time.Time { return k.createTime }

type mutableFileKey struct {
	AccountID  *int
	CreateTime *time.Time
	Label      string
}

// account exposes a property through a getter and setter pair.
type account struct {
	owner string
	Quota int64
}

func (a *account) Owner() string     { return a.owner }
func (a *account) SetOwner(o string) { a.owner = o }

type brokenKey struct {
	AccountID int
}

func newBrokenKey(acountID int) *brokenKey { return &brokenKey{AccountID: acountID} }

type onceKey struct{ Name string }

type concurrentKey struct {
	ID   int
	Name string
}

type report struct {
	Title string
}

var errNoTitle = errors.New("report needs a title")

func newReport(title string) (*report, error) {
	if title == "" {
		return nil, errNoTitle
	}

	return &report{Title: title}, nil
}

type sealedKey struct{ Name string }

// device has getters whose names start with Set.
type device struct {
	settings string
	SetPoint float64
}

func newDevice(settings string) *device { return &device{settings: settings} }

func (d *device) Settings() string { return d.settings }

func init() {
	builder.MustRegisterConstructor[immutableFileKey](newImmutableFileKey, "accountId", "createTime")
	builder.MustRegisterConstructor[semiMutableFileKey](newSemiMutableFileKey, "createTime")
	builder.MustRegisterConstructor[brokenKey](newBrokenKey, "acountId")
	builder.MustRegisterConstructor[report](newReport, "title")
	builder.MustRegisterConstructor[device](newDevice, "settings")
}
