package introspect_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"object-builder/internal/introspect"
)

func variadic(...int) *document     { panic("not implemented") }
func doublePointer() **document     { panic("not implemented") }
func wrongSecond() (document, bool) { panic("not implemented") }

func ExampleParseConstructor() {
	c, err := introspect.ParseConstructor(newImmutableKey, "accountID", "createTime")
	fmt.Println(err, c.PackageAlias, c.Name, c.Target.Name(), len(c.Params), c.ReturnsPointer, c.HasErr)

	c, err = introspect.ParseConstructor(newSemiMutableKey, "createTime")
	fmt.Println(err, c.PackageAlias, c.Name, c.Target.Name(), len(c.Params), c.ReturnsPointer, c.HasErr)

	c, err = introspect.ParseConstructor(newDocument, "title")
	fmt.Println(err, c.PackageAlias, c.Name, c.Target.Name(), len(c.Params), c.ReturnsPointer, c.HasErr)

	_, err = introspect.ParseConstructor(strconv.Itoa, "i")
	fmt.Println(err)

	_, err = introspect.ParseConstructor(42)
	fmt.Println(err)

	_, err = introspect.ParseConstructor(newImmutableKey, "accountID")
	fmt.Println(err)

	// Output:
	// <nil> introspect_test newImmutableKey immutableKey 2 true false
	// <nil> introspect_test newSemiMutableKey semiMutableKey 1 false false
	// <nil> introspect_test newDocument document 1 true true
	// provided function is not a recognizable constructor
	// provided constructor is not a function
	// constructor parameter names do not match its signature: 1 names for 2 parameters
}

func TestParseConstructor_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		fn       any
		names    []string
		expected error
	}{
		{"nil", nil, nil, introspect.ErrConstructorIsNotAFunction},
		{"nil func", (func() *document)(nil), nil, introspect.ErrConstructorIsNotAFunction},
		{"variadic", variadic, []string{"n"}, introspect.ErrNotAConstructor},
		{"double pointer", doublePointer, nil, introspect.ErrDoublePointer},
		{"second result not error", wrongSecond, nil, introspect.ErrNotAConstructor},
		{"empty name", newDocument, []string{""}, introspect.ErrParameterNames},
		{"folded duplicate", newImmutableKey, []string{"accountID", "AccountId"}, introspect.ErrParameterNames},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := introspect.ParseConstructor(tt.fn, tt.names...)
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestParseConstructor_Params(t *testing.T) {
	c, err := introspect.ParseConstructor(newImmutableKey, "accountID", "createTime")
	require.NoError(t, err)

	require.Len(t, c.Params, 2)
	assert.Equal(t, "accountID", c.Params[0].Name)
	assert.Equal(t, "accountid", c.Params[0].Key)
	assert.Equal(t, "*int", c.Params[0].Type.String())
	assert.Equal(t, "createtime", c.Params[1].Key)
	assert.False(t, c.Implicit())
	assert.Equal(t, "introspect_test.newImmutableKey(accountID *int, createTime *time.Time)", c.String())
}

func TestImplicitConstructor(t *testing.T) {
	c := introspect.ImplicitConstructor(typeOf[counter]())

	assert.True(t, c.Implicit())
	assert.True(t, c.ReturnsPointer)
	assert.Empty(t, c.Params)
	assert.Equal(t, "new()", c.String())
}
